package lzw

import "testing"

func TestDictionaryInitialState(t *testing.T) {
	d := newDictionary()
	if d.size != FirstCode {
		t.Fatalf("size=%d", d.size)
	}
	for _, v := range []byte{0, 65, 255} {
		if got := d.findIndex(nilCode, v); got != int(v) {
			t.Fatalf("findIndex(nil, %d)=%d", v, got)
		}
		if d.entries[v].prev != nilCode || d.entries[v].value != v {
			t.Fatalf("entry %d: %+v", v, d.entries[v])
		}
	}
}

func TestDictionaryAddAssignsCodesInOrder(t *testing.T) {
	d := newDictionary()
	if !d.add(65, 'b') || !d.add(66, 'c') {
		t.Fatal("add failed with free capacity")
	}
	if got := d.findIndex(65, 'b'); got != FirstCode {
		t.Fatalf("first pair: code %d", got)
	}
	if got := d.findIndex(66, 'c'); got != FirstCode+1 {
		t.Fatalf("second pair: code %d", got)
	}
	if got := d.findIndex(65, 'c'); got != nilCode {
		t.Fatalf("absent pair: code %d", got)
	}
}

func TestDictionaryGrowthAndReset(t *testing.T) {
	d := newDictionary()
	width := StartBits
	adds := 0
	for {
		if !d.add(d.size-1, byte(d.size)) {
			t.Fatalf("add failed at size %d", d.size)
		}
		adds++

		var reset bool
		width, reset = d.flush(width)
		if reset {
			if d.size != FirstCode || width != StartBits {
				t.Fatalf("after reset: size=%d width=%d", d.size, width)
			}
			break
		}
		if width < StartBits || width > MaxCodeBits {
			t.Fatalf("width %d out of range at size %d", width, d.size)
		}
		// Width is always the minimum able to address the next code.
		if d.size > 1<<width || d.size < 1<<(width-1) {
			t.Fatalf("width %d does not match size %d", width, d.size)
		}
	}
	if adds != MaxDictEntries-FirstCode {
		t.Fatalf("reset after %d adds", adds)
	}
}

func TestDictionaryOverflow(t *testing.T) {
	d := newDictionary()
	for d.size < MaxDictEntries {
		if !d.add(d.size-1, 0) {
			t.Fatalf("add failed at size %d", d.size)
		}
	}
	if d.add(1, 1) {
		t.Fatal("add past capacity must fail")
	}
}

func TestDictionaryResetForgetsPairs(t *testing.T) {
	d := newDictionary()
	if !d.add(65, 'x') {
		t.Fatal("add failed")
	}
	for d.size < MaxDictEntries {
		d.add(d.size-1, 0)
	}
	width, reset := d.flush(MaxCodeBits)
	if !reset || width != StartBits {
		t.Fatalf("flush at capacity: width=%d reset=%v", width, reset)
	}
	if got := d.findIndex(65, 'x'); got != nilCode {
		t.Fatalf("pair survived reset: code %d", got)
	}
}
