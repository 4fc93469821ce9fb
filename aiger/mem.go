// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aiger

import (
	"strings"
	"unsafe"
)

// Allocator is told about every array and string a model allocates and
// releases, so that a model can be accounted for inside a larger memory
// budget.  The Context of the model's Config is passed through unchanged.
type Allocator interface {
	Alloc(ctx interface{}, bytes int)
	Free(ctx interface{}, bytes int)
}

// Config configures a model.  The zero Config uses no allocator.
type Config struct {
	Allocator Allocator
	Context   interface{}
}

// Counter is an Allocator which keeps track of the number of bytes in use.
type Counter struct {
	Cur    int64 // bytes currently allocated
	Max    int64 // high water mark of Cur
	Allocs int64 // number of calls to Alloc
}

// Alloc implements Allocator.
func (c *Counter) Alloc(ctx interface{}, n int) {
	c.Cur += int64(n)
	c.Allocs++
	if c.Cur > c.Max {
		c.Max = c.Cur
	}
}

// Free implements Allocator.
func (c *Counter) Free(ctx interface{}, n int) {
	c.Cur -= int64(n)
}

func (t *T) alloc(n int) {
	if t.cfg.Allocator != nil && n > 0 {
		t.cfg.Allocator.Alloc(t.cfg.Context, n)
	}
}

func (t *T) free(n int) {
	if t.cfg.Allocator != nil && n > 0 {
		t.cfg.Allocator.Free(t.cfg.Context, n)
	}
}

func sizeOf[E any]() int {
	var e E
	return int(unsafe.Sizeof(e))
}

// resize gives a copy of s with capacity n, accounting for the old
// and new storage.
func resize[E any](t *T, s []E, n int) []E {
	sz := sizeOf[E]()
	r := make([]E, len(s), n)
	copy(r, s)
	t.alloc(n * sz)
	t.free(cap(s) * sz)
	return r
}

// push appends e to s, doubling the capacity of s when it is full.
func push[E any](t *T, s []E, e E) []E {
	if len(s) == cap(s) {
		n := 2 * cap(s)
		if n == 0 {
			n = 1
		}
		s = resize(t, s, n)
	}
	return append(s, e)
}

// fit makes sure s has room for n elements.
func fit[E any](t *T, s []E, n int) []E {
	if cap(s) >= n {
		return s
	}
	return resize(t, s, n)
}

func release[E any](t *T, s []E) {
	t.free(cap(s) * sizeOf[E]())
}

func (t *T) copyStr(s string) string {
	if s == "" {
		return ""
	}
	if strings.IndexByte(s, '\n') >= 0 {
		panic("aiger: name contains a new line")
	}
	t.alloc(len(s) + 1)
	return strings.Clone(s)
}

func (t *T) freeStr(s string) {
	if s != "" {
		t.free(len(s) + 1)
	}
}
