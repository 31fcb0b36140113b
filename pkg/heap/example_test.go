package heap_test

import (
	"cmp"
	"fmt"

	"github.com/matzehuels/pathfinder/pkg/heap"
)

type task struct {
	name     string
	priority int
}

func ExampleHeap_Resort() {
	h := heap.New(func(a, b *task) int { return cmp.Compare(a.priority, b.priority) })

	write := &task{"write", 3}
	h.Push(&task{"plan", 1})
	h.Push(&task{"review", 2})
	h.Push(write)

	// Lower a key in place, then restore heap order.
	write.priority = 0
	h.Resort(write)

	for !h.Empty() {
		t, _ := h.Pop()
		fmt.Println(t.name)
	}
	// Output:
	// write
	// plan
	// review
}

func ExampleNewOrdered() {
	h := heap.NewOrdered[int](heap.WithMaxHeap())
	for _, v := range []int{2, 7, 4} {
		h.Push(v)
	}
	top, _ := h.Peek()
	fmt.Println(top, h.Len())
	// Output:
	// 7 3
}
