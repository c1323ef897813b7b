package push

import (
	"fmt"
	"io"
)

// Dumper writes a human-readable snapshot of a State's stacks, queues and
// bindings, grounded on the teacher's vmDumper (cmd/gothird/dumper.go):
// one small type wrapping an io.Writer, with one method per section.
type Dumper struct {
	st  *State
	out io.Writer
}

// NewDumper returns a Dumper that writes st's snapshots to out.
func NewDumper(st *State, out io.Writer) *Dumper {
	return &Dumper{st: st, out: out}
}

// Dump writes every section of the snapshot: run metadata, every typed
// stack, the I/O queues, and the bindings table.
func (d *Dumper) Dump() {
	fmt.Fprintf(d.out, "# Push State Dump (run %s)\n", d.st.RunID)
	d.dumpStacks()
	d.dumpQueues()
	d.dumpBindings()
}

func (d *Dumper) dumpStacks() {
	s := d.st.Stacks
	dumpStack(d.out, "BOOLEAN", s.Boolean.Items())
	dumpStack(d.out, "INTEGER", s.Integer.Items())
	dumpStack(d.out, "FLOAT", s.Float.Items())
	dumpStack(d.out, "NAME", s.Name.Items())
	dumpItemStack(d.out, "CODE", s.Code.Items())
	dumpItemStack(d.out, "EXEC", s.Exec.Items())
	dumpStack(d.out, "BOOLVECTOR", s.BoolVector.Items())
	dumpStack(d.out, "INTVECTOR", s.IntVector.Items())
	dumpStack(d.out, "FLOATVECTOR", s.FloatVector.Items())
	dumpStack(d.out, "INDEX", s.Index.Items())
	dumpGraphStack(d.out, s.Graph.Items())
}

func dumpStack[T any](out io.Writer, name string, items []T) {
	fmt.Fprintf(out, "  %s: %v\n", name, items)
}

func dumpItemStack(out io.Writer, name string, items []Item) {
	rendered := make([]string, len(items))
	for i, it := range items {
		rendered[i] = it.String()
	}
	fmt.Fprintf(out, "  %s: %v\n", name, rendered)
}

func dumpGraphStack(out io.Writer, items []*Graph) {
	rendered := make([]string, len(items))
	for i, g := range items {
		rendered[i] = fmt.Sprintf("<graph:%d nodes>", g.NodeCount())
	}
	fmt.Fprintf(out, "  GRAPH: %v\n", rendered)
}

func (d *Dumper) dumpQueues() {
	fmt.Fprintf(d.out, "  INPUT: %d queued\n", d.st.Stacks.Input.Len())
	fmt.Fprintf(d.out, "  OUTPUT: %d queued\n", d.st.Stacks.Output.Len())
}

func (d *Dumper) dumpBindings() {
	names := d.st.Bindings.Names()
	fmt.Fprintf(d.out, "  bindings (%d):\n", len(names))
	for _, name := range names {
		value, _ := d.st.Bindings.Lookup(name)
		fmt.Fprintf(d.out, "    %s = %s\n", name, value.String())
	}
}
