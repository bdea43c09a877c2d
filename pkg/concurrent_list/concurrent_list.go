/*
 * Copyright (C) 2020-2022, IrineSistiana
 *
 * This file is part of mosdns.
 *
 * mosdns is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * mosdns is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 */

package concurrent_list

import (
	"io"
	"os"
	"sync"

	"github.com/Brandon-Watkins/CS2235-PA02/pkg/list"
)

// ConcurrentList is a list.List guarded by a mutex.
// All methods are safe for concurrent use.
type ConcurrentList[E any] struct {
	sync.Mutex
	l *list.List[E]
}

// NewConcurrentList wraps l. l must not be accessed directly afterwards.
// A nil l is replaced by list.New.
func NewConcurrentList[E any](l *list.List[E]) *ConcurrentList[E] {
	if l == nil {
		l = list.New[E]()
	}
	return &ConcurrentList[E]{l: l}
}

func (cl *ConcurrentList[E]) First() (v E, ok bool) {
	cl.Lock()
	defer cl.Unlock()
	return cl.l.First()
}

func (cl *ConcurrentList[E]) Last() (v E, ok bool) {
	cl.Lock()
	defer cl.Unlock()
	return cl.l.Last()
}

func (cl *ConcurrentList[E]) AddFirst(e E) bool {
	cl.Lock()
	defer cl.Unlock()
	return cl.l.AddFirst(e)
}

func (cl *ConcurrentList[E]) AddLast(e E) bool {
	cl.Lock()
	defer cl.Unlock()
	return cl.l.AddLast(e)
}

func (cl *ConcurrentList[E]) RemoveFirst() (v E, ok bool) {
	cl.Lock()
	defer cl.Unlock()
	return cl.l.RemoveFirst()
}

func (cl *ConcurrentList[E]) RemoveLast() (v E, ok bool) {
	cl.Lock()
	defer cl.Unlock()
	return cl.l.RemoveLast()
}

func (cl *ConcurrentList[E]) Insert(e E, index int) bool {
	cl.Lock()
	defer cl.Unlock()
	return cl.l.Insert(e, index)
}

func (cl *ConcurrentList[E]) Remove(index int) (v E, ok bool) {
	cl.Lock()
	defer cl.Unlock()
	return cl.l.Remove(index)
}

func (cl *ConcurrentList[E]) Get(index int) (v E, ok bool) {
	cl.Lock()
	defer cl.Unlock()
	return cl.l.Get(index)
}

func (cl *ConcurrentList[E]) Size() int {
	cl.Lock()
	defer cl.Unlock()
	return cl.l.Size()
}

func (cl *ConcurrentList[E]) Len() int {
	return cl.Size()
}

func (cl *ConcurrentList[E]) IsEmpty() bool {
	cl.Lock()
	defer cl.Unlock()
	return cl.l.IsEmpty()
}

func (cl *ConcurrentList[E]) PrintList() {
	_, _ = cl.Fprint(os.Stdout)
}

// Fprint renders the list under the lock and writes it to w
// after the lock is released.
func (cl *ConcurrentList[E]) Fprint(w io.Writer) (int, error) {
	return io.WriteString(w, cl.String())
}

func (cl *ConcurrentList[E]) String() string {
	cl.Lock()
	defer cl.Unlock()
	return cl.l.String()
}
