package values

import "testing"

func TestSerializeInt32(t *testing.T) {
	b, err := Serialize(Int32{V: 7})
	if err != nil {
		t.Fatal(err)
	}
	if b[0] != tagInt32 {
		t.Fatalf("tag = %x; want %x", b[0], tagInt32)
	}
	if len(b) != 5 {
		t.Fatalf("len = %d; want 5 (tag + 4 bytes)", len(b))
	}
}

func TestSerializeIllegalRejected(t *testing.T) {
	if _, err := Serialize(Illegal{}); err == nil {
		t.Fatal("serializing Illegal must fail")
	}
}

func TestSerializeSmallTuple(t *testing.T) {
	b, err := Serialize(Tuple{Elems: []Value{Int32{V: 1}, Int32{V: 2}}})
	if err != nil {
		t.Fatal(err)
	}
	if b[0] != tagSmallTuple {
		t.Fatalf("tag = %x; want %x", b[0], tagSmallTuple)
	}
	if b[1] != 2 {
		t.Fatalf("count byte = %d; want 2", b[1])
	}
}

func TestEncodeLineTableZeroSDExtendsPriorLD(t *testing.T) {
	table := EncodeLineTable([][2]int{{0, 1}, {10, 2}, {10, 3}})
	if len(table) != 2 {
		t.Fatalf("len = %d; want 2", len(table))
	}
	if table[0] != 10 || table[1] != 2 {
		t.Fatalf("entry = (%d, %d); want (10, 2)", table[0], table[1])
	}
}
