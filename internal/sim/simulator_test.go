package sim

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestSimulateScenarios(t *testing.T) {
	tests := []struct {
		name    string
		chamber string
		force   int
		want    []string
	}{
		{
			name:    "center bomb",
			chamber: ".....B.....",
			force:   1,
			want: []string{
				".....B.....",
				"....<.>....",
				"...<...>...",
				"..<.....>..",
				".<.......>.",
				"<.........>",
				"...........",
			},
		},
		{
			name:    "edge bomb",
			chamber: "B....",
			force:   1,
			want:    []string{"B....", ".>...", "..>..", "...>.", "....>", "....."},
		},
		{
			name:    "crossing pair",
			chamber: "B...B",
			force:   1,
			want:    []string{"B...B", ".>.<.", "..X..", ".<.>.", "<...>", "....."},
		},
		{
			name:    "offset pair",
			chamber: "B..B.",
			force:   1,
			want:    []string{"B..B.", ".><.>", ".<>..", "<..>.", "....>", "....."},
		},
		{
			name:    "force larger than chamber",
			chamber: "..B..",
			force:   10,
			want:    []string{"..B..", "....."},
		},
		{
			name:    "single bomb",
			chamber: "B",
			force:   1,
			want:    []string{"B", "."},
		},
		{
			name:    "force two",
			chamber: "..B....",
			force:   2,
			want:    []string{"..B....", "<...>..", "......>", "......."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Simulate(tt.chamber, tt.force)
			if err != nil {
				t.Fatalf("simulate failed: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Simulate(%q, %d) =\n%v\nwant\n%v", tt.chamber, tt.force, got, tt.want)
			}
		})
	}
}

func TestSimulateNoBombs(t *testing.T) {
	got, err := Simulate("....", 3)
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}
	if len(got) != 1 || got[0] != "...." {
		t.Errorf("expected single empty frame, got %v", got)
	}
}

func TestSimulateErrors(t *testing.T) {
	tests := []struct {
		name    string
		chamber string
		force   int
		target  error
	}{
		{"empty chamber", "", 1, ErrChamberSize},
		{"too long", strings.Repeat(".", 51), 1, ErrChamberSize},
		{"size before force", strings.Repeat("B", 51), 11, ErrChamberSize},
		{"zero force", "B..", 0, ErrForceRange},
		{"force eleven", "B..", 11, ErrForceRange},
		{"negative force", "B..", -3, ErrForceRange},
		{"force before symbol", "B.x", 11, ErrForceRange},
		{"foreign symbol", "B.x", 1, ErrInvalidSymbol},
		{"shrapnel symbol in input", "<..", 1, ErrInvalidSymbol},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frames, err := Simulate(tt.chamber, tt.force)
			if !errors.Is(err, tt.target) {
				t.Fatalf("expected %v, got %v", tt.target, err)
			}
			if frames != nil {
				t.Errorf("expected no frames on error, got %v", frames)
			}
		})
	}
}

func TestErrorPayloads(t *testing.T) {
	_, err := Simulate(strings.Repeat(".", 51), 1)
	var sizeErr *ChamberSizeError
	if !errors.As(err, &sizeErr) || sizeErr.Length != 51 {
		t.Errorf("expected ChamberSizeError(51), got %v", err)
	}

	_, err = Simulate("B", 11)
	var forceErr *ForceRangeError
	if !errors.As(err, &forceErr) || forceErr.Force != 11 {
		t.Errorf("expected ForceRangeError(11), got %v", err)
	}

	_, err = Simulate("..?B", 1)
	var symErr *InvalidSymbolError
	if !errors.As(err, &symErr) {
		t.Fatalf("expected InvalidSymbolError, got %v", err)
	}
	if symErr.Symbol != '?' || symErr.Index != 2 || symErr.Chamber != "..?B" {
		t.Errorf("unexpected payload: %+v", symErr)
	}
}

func TestStepDoesNotMutateInput(t *testing.T) {
	s := Shrapnel{Left: NewPositions(0, 3), Right: NewPositions(3, 4)}
	next := Step(s, 1, 5)

	if !reflect.DeepEqual(s.Left.Sorted(), []int{0, 3}) || !reflect.DeepEqual(s.Right.Sorted(), []int{3, 4}) {
		t.Errorf("input sets changed: %v %v", s.Left.Sorted(), s.Right.Sorted())
	}
	if !reflect.DeepEqual(next.Left.Sorted(), []int{2}) {
		t.Errorf("left = %v, want [2]", next.Left.Sorted())
	}
	if !reflect.DeepEqual(next.Right.Sorted(), []int{4}) {
		t.Errorf("right = %v, want [4]", next.Right.Sorted())
	}
}

func TestInitShrapnelIndependentSets(t *testing.T) {
	s := InitShrapnel("B.B")
	s.Left.Add(1)
	if s.Right.Has(1) {
		t.Error("left and right sets share storage")
	}
	if s.Count() != 5 {
		t.Errorf("expected 5 pieces, got %d", s.Count())
	}
}

func TestRender(t *testing.T) {
	s := Shrapnel{Left: NewPositions(0, 2), Right: NewPositions(2, 3)}
	if got := Render(s, 5); got != "<.X>." {
		t.Errorf("Render = %q, want %q", got, "<.X>.")
	}
}

func TestObserverSeesEveryStep(t *testing.T) {
	var steps []int
	var frames []string
	s := New()
	s.AddObserver(ObserverFunc(func(step int, _ Shrapnel, frame string) {
		steps = append(steps, step)
		frames = append(frames, frame)
	}))

	res, err := s.Run(Config{Chamber: "B...B", Force: 1})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if res.Steps != 5 || len(steps) != 5 {
		t.Fatalf("expected 5 steps, got %d (observed %d)", res.Steps, len(steps))
	}
	if !reflect.DeepEqual(frames, res.Frames[1:]) {
		t.Errorf("observed frames %v differ from result %v", frames, res.Frames[1:])
	}
	if res.Final() != "....." {
		t.Errorf("final frame = %q", res.Final())
	}
}
