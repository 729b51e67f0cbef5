// SPDX-License-Identifier: GPL-2.0-or-later

package cmd

import "testing"

func TestParse(t *testing.T) {
	for _, tc := range []struct {
		in     string
		wantF  string
		wantAS string
		wantA  []Arg
	}{
		{
			in:     `say hello world`,
			wantF:  `say hello world`,
			wantAS: `hello world`,
			wantA:  []Arg{{"say"}, {"hello"}, {"world"}},
		},
		{
			in:     `say "hello world"`,
			wantF:  `say "hello world"`,
			wantAS: `hello world`,
			wantA:  []Arg{{"say"}, {"hello world"}},
		},
		{
			in:     ` say_team  foo bar baz `,
			wantF:  `say_team  foo bar baz`,
			wantAS: `foo bar baz`,
			wantA:  []Arg{{"say_team"}, {"foo"}, {"bar"}, {"baz"}},
		},
		{
			in:     `light 1 2 3 // sun`,
			wantF:  `light 1 2 3 // sun`,
			wantAS: `1 2 3 // sun`,
			wantA:  []Arg{{"light"}, {"1"}, {"2"}, {"3"}},
		},
		{
			in:     `// only a comment`,
			wantF:  `// only a comment`,
			wantAS: ``,
			wantA:  []Arg{},
		},
		{
			in:     `bind "left shift" +speed`,
			wantF:  `bind "left shift" +speed`,
			wantAS: `left shift" +speed`,
			wantA:  []Arg{{"bind"}, {"left shift"}, {"+speed"}},
		},
		{
			in:     `echo "open`,
			wantF:  `echo "open`,
			wantAS: `open`,
			wantA:  []Arg{{"echo"}, {"open"}},
		},
	} {
		arg := Parse(tc.in)
		if tc.wantF != arg.Full() {
			t.Errorf("Parse(%q).Full()=%q, want %q", tc.in, arg.Full(), tc.wantF)
		}
		if tc.wantAS != arg.ArgumentString() {
			t.Errorf("Parse(%q).ArgumentString()=%q, want %q", tc.in, arg.ArgumentString(), tc.wantAS)
		}
		as := arg.Args()
		if len(tc.wantA) != len(as) {
			t.Fatalf("Parse(%q).Args() has len(%d), want %d", tc.in, len(as), len(tc.wantA))
		}
		for i := range tc.wantA {
			if tc.wantA[i] != as[i] {
				t.Errorf("Arg[%d]=%q, want %q", i, as[i], tc.wantA[i])
			}
		}
	}
}

func TestNumbers(t *testing.T) {
	a := Parse(`MESH "a b.obj" 1 -2.5 x 7`)
	if got := a.Argv(1).String(); got != "a b.obj" {
		t.Errorf("Argv(1) = %q", got)
	}
	if got := a.Argv(2).Float32(); got != 1 {
		t.Errorf("Argv(2).Float32() = %v", got)
	}
	if got := a.Argv(3).Float32(); got != -2.5 {
		t.Errorf("Argv(3).Float32() = %v", got)
	}
	if _, err := a.Argv(4).ParseFloat32(); err == nil {
		t.Errorf("ParseFloat32(x) succeeded")
	}
	if got := a.Argv(4).Float32(); got != 0 {
		t.Errorf("Argv(4).Float32() = %v, want 0", got)
	}
	if got := a.Argv(5).Int(); got != 7 {
		t.Errorf("Argv(5).Int() = %v", got)
	}
	if got := a.Argv(9).String(); got != "" {
		t.Errorf("Argv(9) = %q, want empty", got)
	}
}

func TestCommands(t *testing.T) {
	c := New()
	var got []string
	Must(c.Add("Light", func(a Arguments) error {
		got = append(got, a.Argv(1).String())
		return nil
	}))
	if err := c.Add("light", nil); err == nil {
		t.Errorf("second Add(light) succeeded")
	}
	if ok, err := c.Execute(Parse("LIGHT 1 2 3")); !ok || err != nil {
		t.Errorf("Execute(LIGHT) = %v, %v", ok, err)
	}
	if ok, _ := c.Execute(Parse("FOG 1")); ok {
		t.Errorf("Execute(FOG) ran")
	}
	if ok, _ := c.Execute(Parse("")); ok {
		t.Errorf("Execute of empty line ran")
	}
	if len(got) != 1 || got[0] != "1" {
		t.Errorf("handler saw %q", got)
	}
	if l := c.List(); len(l) != 1 || l[0] != "light" {
		t.Errorf("List() = %q", l)
	}
}
