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

package list

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// List is a doubly linked list bounded by two sentinels.
// The zero value is an empty list ready to use. A List must not be
// copied after first use.
// List is not safe for concurrent use. See concurrent_list.
type List[E any] struct {
	head, tail elem[E] // sentinels, value slots are never read
	length     int

	reject func(e E) bool
	inited bool
}

// New returns an empty list that drops absent elements.
// See IsAbsent.
func New[E any]() *List[E] {
	return NewWithRejecter(IsAbsent[E])
}

// NewWithRejecter returns an empty list that drops every element
// for which reject returns true. A nil reject accepts everything.
func NewWithRejecter[E any](reject func(e E) bool) *List[E] {
	l := new(List[E])
	l.lazyInit()
	l.reject = reject
	return l
}

func (l *List[E]) lazyInit() {
	if l.inited {
		return
	}
	l.inited = true
	l.head.prev = nil
	l.head.next = &l.tail
	l.tail.prev = &l.head
	l.tail.next = nil
	l.length = 0
	if l.reject == nil {
		l.reject = IsAbsent[E]
	}
}

func (l *List[E]) rejected(e E) bool {
	return l.reject != nil && l.reject(e)
}

// First returns the first element. ok is false if l is empty.
func (l *List[E]) First() (v E, ok bool) {
	if l.length == 0 {
		return
	}
	return l.head.next.value, true
}

// Last returns the last element. ok is false if l is empty.
func (l *List[E]) Last() (v E, ok bool) {
	if l.length == 0 {
		return
	}
	return l.tail.prev.value, true
}

// AddFirst puts e in front of the list. It returns false if e was dropped.
func (l *List[E]) AddFirst(e E) bool {
	l.lazyInit()
	if l.rejected(e) {
		return false
	}
	l.insertBefore(e, l.head.next)
	return true
}

// AddLast puts e at the end of the list. It returns false if e was dropped.
func (l *List[E]) AddLast(e E) bool {
	l.lazyInit()
	if l.rejected(e) {
		return false
	}
	l.insertBefore(e, &l.tail)
	return true
}

// RemoveFirst removes and returns the first element.
// ok is false if l is empty.
func (l *List[E]) RemoveFirst() (v E, ok bool) {
	if l.length == 0 {
		return
	}
	return l.unlink(l.head.next), true
}

// RemoveLast removes and returns the last element.
// ok is false if l is empty.
func (l *List[E]) RemoveLast() (v E, ok bool) {
	if l.length == 0 {
		return
	}
	return l.unlink(l.tail.prev), true
}

// Insert puts e at index, the element that was there and all elements
// after it move one position back. An index that is not less than Size
// appends e. Insert returns false and does nothing if e was dropped
// or index is negative.
func (l *List[E]) Insert(e E, index int) bool {
	l.lazyInit()
	if l.rejected(e) || index < 0 {
		return false
	}
	if index >= l.length {
		l.insertBefore(e, &l.tail)
		return true
	}
	l.insertBefore(e, l.find(index))
	return true
}

// Remove removes and returns the element at index.
// ok is false if index is out of range.
func (l *List[E]) Remove(index int) (v E, ok bool) {
	if index < 0 || index >= l.length {
		return
	}
	return l.unlink(l.find(index)), true
}

// Get returns the element at index.
// ok is false if index is out of range.
func (l *List[E]) Get(index int) (v E, ok bool) {
	if index < 0 || index >= l.length {
		return
	}
	return l.find(index).value, true
}

// Size returns the number of elements.
func (l *List[E]) Size() int {
	return l.length
}

// Len is an alias of Size.
func (l *List[E]) Len() int {
	return l.length
}

// IsEmpty reports whether l has no elements.
func (l *List[E]) IsEmpty() bool {
	return l.length == 0
}

// PrintList writes all elements to stdout in one line, separated by a space.
func (l *List[E]) PrintList() {
	_, _ = l.Fprint(os.Stdout)
}

// Fprint writes all elements to w in one line, separated by a space.
// No newline is appended.
func (l *List[E]) Fprint(w io.Writer) (int, error) {
	return io.WriteString(w, l.String())
}

func (l *List[E]) String() string {
	sb := new(strings.Builder)
	for e, i := l.head.next, 0; i < l.length; e, i = e.next, i+1 {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(sb, e.value)
	}
	return sb.String()
}

// find returns the element at index, walking from whichever
// sentinel is closer. index must be in [0, l.length).
func (l *List[E]) find(index int) *elem[E] {
	if index < l.length/2 {
		e := &l.head
		for i := 0; i <= index; i++ {
			e = e.next
		}
		return e
	}
	e := &l.tail
	for i := l.length; i > index; i-- {
		e = e.prev
	}
	return e
}

// insertBefore links a new element holding v in front of at.
func (l *List[E]) insertBefore(v E, at *elem[E]) {
	e := &elem[E]{
		value: v,
		prev:  at.prev,
		next:  at,
	}
	e.prev.next = e
	at.prev = e
	l.length++
}

// unlink removes e from the chain and returns its value.
// e must not be a sentinel.
func (l *List[E]) unlink(e *elem[E]) E {
	e.prev.next = e.next
	e.next.prev = e.prev
	v := e.value
	var zero E
	e.prev, e.next, e.value = nil, nil, zero
	l.length--
	return v
}
