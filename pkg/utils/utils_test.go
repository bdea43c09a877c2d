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

package utils

import (
	"errors"
	"reflect"
	"testing"
)

func TestSplitString2(t *testing.T) {
	type args struct {
		s      string
		symbol string
	}
	tests := []struct {
		name   string
		args   args
		wantS1 string
		wantS2 string
		wantOk bool
	}{
		{"blank", args{"", ""}, "", "", true},
		{"blank", args{"///", ""}, "", "///", true},
		{"split", args{"///", "/"}, "", "//", true},
		{"split", args{"--/", "/"}, "--", "", true},
		{"split", args{"https://***.***.***", "://"}, "https", "***.***.***", true},
		{"split", args{"://***.***.***", "://"}, "", "***.***.***", true},
		{"split", args{"https://", "://"}, "https", "", true},
		{"split", args{"--/", "*"}, "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotS1, gotS2, gotOk := SplitString2(tt.args.s, tt.args.symbol)
			if gotS1 != tt.wantS1 {
				t.Errorf("SplitString2() gotS1 = %v, want %v", gotS1, tt.wantS1)
			}
			if gotS2 != tt.wantS2 {
				t.Errorf("SplitString2() gotS2 = %v, want %v", gotS2, tt.wantS2)
			}
			if gotOk != tt.wantOk {
				t.Errorf("SplitString2() gotOk = %v, want %v", gotOk, tt.wantOk)
			}
		})
	}
}

func TestSplitLastString2(t *testing.T) {
	tests := []struct {
		name   string
		s      string
		symbol string
		wantS1 string
		wantS2 string
		wantOk bool
	}{
		{"blank", "", "", "", "", true},
		{"blank symbol", "a:b", "", "a:b", "", true},
		{"one", "a:b", ":", "a", "b", true},
		{"last", "a:b:c", ":", "a:b", "c", true},
		{"tail", "a:", ":", "a", "", true},
		{"no symbol", "abc", ":", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotS1, gotS2, gotOk := SplitLastString2(tt.s, tt.symbol)
			if gotS1 != tt.wantS1 || gotS2 != tt.wantS2 || gotOk != tt.wantOk {
				t.Errorf("SplitLastString2() = %q, %q, %v, want %q, %q, %v", gotS1, gotS2, gotOk, tt.wantS1, tt.wantS2, tt.wantOk)
			}
		})
	}
}

func TestErrors(t *testing.T) {
	es := new(Errors)
	if es.Build() != nil {
		t.Fatal("empty Errors should build nil")
	}
	e1 := errors.New("e1")
	es.Append(e1)
	if es.Build() != e1 {
		t.Fatal("single error should be returned as is")
	}
	es.Append(errors.New("e2"))
	if got, want := es.Build().Error(), "joint errors: #0: e1 #1: e2"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRemoveComment(t *testing.T) {
	type args struct {
		s      string
		symbol string
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{name: "empty", args: args{s: "", symbol: ""}, want: ""},
		{name: "empty symbol", args: args{s: "12345", symbol: ""}, want: ""},
		{name: "empty string", args: args{s: "", symbol: "#"}, want: ""},
		{name: "remove 1", args: args{s: "123/456", symbol: "/"}, want: "123"},
		{name: "remove 2", args: args{s: "123//456", symbol: "//"}, want: "123"},
		{name: "remove 3", args: args{s: "123/*/456", symbol: "//"}, want: "123/*/456"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RemoveComment(tt.args.s, tt.args.symbol); got != tt.want {
				t.Errorf("RemoveComment() = %v, want %v", got, tt.want)
			}
		})
	}
}

type TestArgsStruct struct {
	A string `yaml:"1"`
	B []int  `yaml:"2"`
}

func Test_WeakDecode(t *testing.T) {
	testObj := new(TestArgsStruct)
	testArgs := map[string]interface{}{
		"1": "test",
		"2": []int{1, 2, 3},
	}
	wantObj := &TestArgsStruct{
		A: "test",
		B: []int{1, 2, 3},
	}

	err := WeakDecode(testArgs, testObj)
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(testObj, wantObj) {
		t.Fatalf("args decode failed, want %v, got %v", wantObj, testObj)
	}
}
