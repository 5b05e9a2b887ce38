package validator

import (
	"context"
	"testing"

	"svw.info/hanoi/internal/domain"
	"svw.info/hanoi/internal/solver"
)

func threePeg(n int, moves []domain.Move) *domain.Solution {
	return &domain.Solution{Variant: domain.ThreePeg, Disks: n, Pegs: []domain.PegLabel{"1", "3", "2"}, Moves: moves}
}

func fourPeg(n int, moves []domain.Move) *domain.Solution {
	return &domain.Solution{Variant: domain.FourPeg, Disks: n, Pegs: []domain.PegLabel{"1", "4", "2", "3"}, Moves: moves}
}

func TestValidateAcceptsSolverOutput(t *testing.T) {
	ctx := context.Background()
	v := New()
	for n := 1; n <= 10; n++ {
		ok, conf, err := v.Validate(ctx, threePeg(n, solver.Solve3(n, "1", "3", "2")))
		if err != nil || !ok {
			t.Fatalf("3-peg n=%d rejected: err=%v conflicts=%v", n, err, conf)
		}
		ok, conf, err = v.Validate(ctx, fourPeg(n, solver.Solve4(n, "1", "4", "2", "3")))
		if err != nil || !ok {
			t.Fatalf("4-peg n=%d rejected: err=%v conflicts=%v", n, err, conf)
		}
	}
}

func TestValidateReportsFirstIllegalStep(t *testing.T) {
	moves := []domain.Move{{From: "1", To: "2"}, {From: "1", To: "2"}, {From: "2", To: "3"}}
	ok, conf, err := New().Validate(context.Background(), threePeg(3, moves))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok || len(conf) != 1 {
		t.Fatalf("ok=%v conflicts=%v", ok, conf)
	}
	if conf[0].Step != 2 || conf[0].Kind != domain.IllegalStack {
		t.Fatalf("conflict=%+v want step 2 illegal_stack", conf[0])
	}
}

func TestValidateConflictKinds(t *testing.T) {
	cases := []struct {
		name  string
		moves []domain.Move
		kind  domain.ErrorKind
		step  int
	}{
		{"empty origin", []domain.Move{{From: "2", To: "3"}}, domain.EmptyOrigin, 1},
		{"unknown label", []domain.Move{{From: "1", To: "7"}}, domain.InvalidInput, 1},
		{"same label", []domain.Move{{From: "1", To: "1"}}, domain.InvalidInput, 1},
		{"stops short", []domain.Move{{From: "1", To: "3"}}, domain.Unsolved, 1},
		{"no moves", nil, domain.Unsolved, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, conf, err := New().Validate(context.Background(), threePeg(2, tc.moves))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ok || len(conf) != 1 {
				t.Fatalf("ok=%v conflicts=%v", ok, conf)
			}
			if conf[0].Kind != tc.kind || conf[0].Step != tc.step {
				t.Fatalf("conflict=%+v want kind=%v step=%d", conf[0], tc.kind, tc.step)
			}
		})
	}
}

func TestValidateTamperedFourPeg(t *testing.T) {
	moves := solver.Solve4(5, "1", "4", "2", "3")
	// Swap the spare pair in the second half, the classic transcription slip.
	bad := solver.Solve4(5, "1", "4", "3", "2")
	tampered := append(append([]domain.Move{}, moves[:len(moves)/2]...), bad[len(bad)/2:]...)
	ok, conf, err := New().Validate(context.Background(), fourPeg(5, tampered))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatalf("tampered sequence accepted")
	}
	if len(conf) != 1 || conf[0].Step <= len(moves)/2 {
		t.Fatalf("conflict %v should come after the untouched prefix", conf)
	}
}

func TestValidateRejectsMalformedSolution(t *testing.T) {
	v := New()
	ctx := context.Background()
	if _, _, err := v.Validate(ctx, nil); err == nil {
		t.Fatal("nil solution accepted")
	}
	if _, _, err := v.Validate(ctx, &domain.Solution{Disks: 1, Pegs: []domain.PegLabel{"1", "2"}}); err == nil {
		t.Fatal("two-peg solution accepted")
	}
	if _, _, err := v.Validate(ctx, &domain.Solution{Disks: 1, Pegs: []domain.PegLabel{"1", "2", "2"}}); err == nil {
		t.Fatal("duplicate labels accepted")
	}
}

func TestValidateHonoursCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := New().Validate(ctx, threePeg(3, solver.Solve3(3, "1", "3", "2"))); err == nil {
		t.Fatal("expected context error")
	}
}
