package esamf

import "testing"

func TestNodeFieldLayout(t *testing.T) {
	if matchBits+2*offsetBits != 64 {
		t.Fatal("node fields do not fill the word")
	}
	if offsetMask&parentMask != 0 {
		t.Fatal("offset and parent fields overlap")
	}
	lcpMask := ^uint64(0) << lcpShift
	if lcpMask&offsetMask != 0 || lcpMask&parentMask != 0 {
		t.Fatal("lcp field overlaps the lower fields")
	}
	if lcpMask|offsetMask|parentMask != ^uint64(0) {
		t.Fatal("fields do not cover the word")
	}
}

func TestNodeStampPreservesShape(t *testing.T) {
	words := []uint64{
		0,
		packNode(63, parentMask),
		packNode(1, 12345),
		rootSentinel,
	}
	for _, w := range words {
		for _, pos := range []int{0, 1, 511, MaxBlockSize - 1} {
			stamped := nodeWithStamp(w, stampBits(pos))
			if nodeLCP(stamped) != nodeLCP(w) || nodeParent(stamped) != nodeParent(w) {
				t.Fatalf("stamping %#x at %d disturbed lcp/parent", w, pos)
			}
			if stampPosition(nodeStampBits(stamped)) != pos {
				t.Fatalf("stamp round-trip failed for position %d", pos)
			}
			if cleared := stamped &^ offsetMask; nodeStampBits(cleared) != 0 {
				t.Fatalf("clearing the offset field left bits behind: %#x", cleared)
			}
		}
	}
}

func TestRootSentinelNeverLooksUntouched(t *testing.T) {
	if nodeStampBits(rootSentinel) != offsetMask {
		t.Fatal("root sentinel must carry the all-ones offset field")
	}
	if nodeLCP(rootSentinel) != 0 || nodeParent(rootSentinel) != 0 {
		t.Fatal("root sentinel must have zero lcp and parent")
	}
	// The highest usable one-based stamp stays below the sentinel value.
	if stampBits(MaxBlockSize-1) >= offsetMask {
		t.Fatal("maximum visit stamp collides with the root sentinel")
	}
}
