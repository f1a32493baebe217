package puzzle

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
)

// Make sure error messages never panic and are never empty, with
// and without supplemental values.  The testing of individual
// cases we leave to the functional testing done of other files.
func TestErrorNoPanicNoEmpty(t *testing.T) {
	defer (func() {
		if e := recover(); e != nil {
			t.Fatalf("Panic during testing: %v", e)
		}
	})()
	for sc := int(UnknownScope); sc <= int(MaxScope); sc++ {
		for co := int(UnknownCondition); co <= int(MaxCondition); co++ {
			for _, vals := range []ErrorData{nil, {Point{3, 4}, 7, 9}} {
				e := Error{
					Scope:     ErrorScope(sc),
					Condition: ErrorCondition(co),
					Values:    vals,
				}
				m := e.Error()
				t.Log(m)
				if len(m) == 0 {
					t.Errorf("Empty error message for %+v", e)
				}
			}
		}
	}
}

func TestErrorCustomMessage(t *testing.T) {
	e := Error{Message: "pre-canned"}
	if e.Error() != "pre-canned" {
		t.Errorf("Custom message not used: %q", e.Error())
	}
}

func TestErrorPredicates(t *testing.T) {
	contra := contradictionError(CellScope, ErrorData{5})
	if !IsContradiction(contra) || IsUnsolvable(contra) {
		t.Errorf("contradiction error misclassified: %v", contra)
	}
	unsolv := unsolvableError()
	if !IsUnsolvable(unsolv) || IsContradiction(unsolv) {
		t.Errorf("unsolvable error misclassified: %v", unsolv)
	}
	// the predicates must see through wrapping
	wrapped := fmt.Errorf("solving sample: %w", unsolv)
	if !IsUnsolvable(wrapped) {
		t.Errorf("wrapped unsolvable error not recognized: %v", wrapped)
	}
	if IsContradiction(errors.New("other")) || IsUnsolvable(nil) {
		t.Errorf("foreign errors misclassified")
	}
}

func TestRangeError(t *testing.T) {
	low := rangeError(0, 1, 9)
	if low.Condition != TooSmallCondition {
		t.Errorf("low value classified as %v", low.Condition)
	}
	high := rangeError(10, 1, 9)
	if high.Condition != TooLargeCondition {
		t.Errorf("high value classified as %v", high.Condition)
	}
}

func TestErrorJSON(t *testing.T) {
	e := contradictionError(GridScope, ErrorData{Point{0, 0}, 5})
	e.Message = e.Error()
	bytes, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("Failed to marshal error: %v", err)
	}
	var back Error
	if err := json.Unmarshal(bytes, &back); err != nil {
		t.Fatalf("Failed to unmarshal error: %v", err)
	}
	if back.Scope != GridScope || back.Condition != ContradictionCondition ||
		back.Message != e.Message {
		t.Errorf("error did not survive the JSON trip: %+v", back)
	}
}
