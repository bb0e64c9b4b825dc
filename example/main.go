package main

import (
	"fmt"

	"github.com/intrusive-go/dllist"
)

// task is a record threaded onto the run queue through its embedded link.
type task struct {
	name  string
	ticks int
	link  dllist.Link[*task]
}

func (t *task) ListLink() *dllist.Link[*task] { return &t.link }

func main() {
	var runq dllist.List[task, *task]

	// The queue never allocates; the tasks live in this slice.
	tasks := []task{
		{name: "init", ticks: 1},
		{name: "editor", ticks: 3},
		{name: "compiler", ticks: 2},
	}

	for i := range tasks {
		runq.PushBack(&tasks[i])
	}

	// Round-robin until every task has used up its time slices.
	for !runq.Empty() {
		t := runq.PopFront()
		t.ticks--
		fmt.Printf("ran %s, %d ticks left\n", t.name, t.ticks)

		if t.ticks > 0 {
			runq.PushBack(t)
		}
	}
}
