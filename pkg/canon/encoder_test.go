package canon

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
)

func TestProductions(t *testing.T) {
	var enc Encoder

	cases := []struct {
		name string
		v    Value
		want string
	}{
		{"string", Str("IZP"), `"IZP"`},
		{"anonymous object", Obj("", true, Field("a", Int(1)), Prop("b", "x")), `{"a":1,"b":"x"}`},
		{"named object", Obj("subject", false, Prop("code", "IZP")), `{"subject":{"code":"IZP"}}`},
		{"array member", Obj("", true, Arr("times", Int(7), Int(8))), `{"times":[7,8]}`},
		{"empty array", Obj("", true, Strings("studiumFocuses", nil)), `{"studiumFocuses":[]}`},
		{"null", Obj("", true, Field("semester", Null{})), `{"semester":null}`},
		{"nil value", Obj("", true, Field("semester", nil)), `{"semester":null}`},
	}
	for _, c := range cases {
		got, err := enc.Marshal(c.v)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", c.name, err)
		}
		if got != c.want {
			t.Errorf("%s: got %s, want %s", c.name, got, c.want)
		}
	}
}

func TestArrayOrderIsKept(t *testing.T) {
	v := Obj("", true, Strings("names", []string{"zeta", "alpha", "mid"}))
	got, err := Encoder{}.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	if got != `{"names":["zeta","alpha","mid"]}` {
		t.Errorf("array was reordered: %s", got)
	}
}

func TestEscapeProducesValidDocument(t *testing.T) {
	v := Obj("subject", false,
		Prop("name", `Seminář "C"`),
		Prop("teacher", "Novák\\Svoboda\n\x01"),
	)
	got, err := Encoder{}.Marshal(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"subject":{"name":"Seminář \"C\"","teacher":"Novák\\Svoboda\n\u0001"}}`
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
	if !json.Valid([]byte(got)) {
		t.Errorf("escaped output is not a valid document: %s", got)
	}

	var decoded map[string]map[string]string
	if err := json.Unmarshal([]byte(got), &decoded); err != nil {
		t.Fatalf("failed to decode escaped output: %v", err)
	}
	if decoded["subject"]["name"] != `Seminář "C"` {
		t.Errorf("quote did not survive escaping: %q", decoded["subject"]["name"])
	}
}

func TestStrictReportsQuoteCollision(t *testing.T) {
	v := Obj("subject", false,
		Prop("code", "IZP"),
		Arr("terms", Obj("", true, Prop("teacher", `Jan "Honza" Novák`))),
	)
	_, err := Encoder{Strict: true}.Marshal(v)
	if !errors.Is(err, ErrQuoteCollision) {
		t.Fatalf("expected ErrQuoteCollision, got %v", err)
	}
	var ce *CollisionError
	if !errors.As(err, &ce) {
		t.Fatalf("expected a CollisionError, got %T", err)
	}
	if ce.Path != "subject.terms[0].teacher" {
		t.Errorf("unexpected collision path %q", ce.Path)
	}
}

func TestCheck(t *testing.T) {
	clean := Obj("", true, Prop("a", "plain"))
	if err := Check(clean); err != nil {
		t.Errorf("expected no collisions, got %v", err)
	}

	dirty := Obj("", true, Prop("a", `x"y`), Strings("b", []string{"ok", "tab\there"}))
	err := Check(dirty)
	if !errors.Is(err, ErrQuoteCollision) {
		t.Fatalf("expected collisions, got %v", err)
	}
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok || len(joined.Unwrap()) != 2 {
		t.Errorf("expected 2 collisions, got %v", err)
	}
}

func TestWriteList(t *testing.T) {
	entries := []Value{
		Obj("studium", false, Prop("name", "BIT")),
		Obj("studium", false, Prop("name", "MIT")),
	}

	var buf bytes.Buffer
	if err := (Encoder{}).WriteList(&buf, "studiums", ",", entries); err != nil {
		t.Fatalf("WriteList failed: %v", err)
	}
	want := "{\n\"studiums\":[\n{\"studium\":{\"name\":\"BIT\"}},{\"studium\":{\"name\":\"MIT\"}}\n]}\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}

	buf.Reset()
	if err := (Encoder{}).WriteList(&buf, "subjects", ",\n", nil); err != nil {
		t.Fatalf("WriteList failed: %v", err)
	}
	if buf.String() != "{\n\"subjects\":[\n\n]}\n" {
		t.Errorf("unexpected empty list rendering %q", buf.String())
	}
	if !json.Valid(buf.Bytes()) {
		t.Errorf("empty list is not a valid document")
	}
}
