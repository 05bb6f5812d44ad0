package valuepicker

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/andyrewlee/valuepicker/internal/anim"
	"github.com/andyrewlee/valuepicker/internal/geom"
	"github.com/andyrewlee/valuepicker/internal/picker"
)

// Default layout of the revenue track, in cells:
//
//	Weekly    cols 3-8
//	Monthly   cols 13-19
//	Quarterly cols 24-32
//	Yearly    cols 37-42
//
// Text sits on row 2 of a 46x5 track.
func revenueChildren() []Child[string] {
	return []Child[string]{
		Tagged("Weekly", "Weekly"),
		Tagged("Monthly", "Monthly"),
		Tagged("Quarterly", "Quarterly"),
		Tagged("Yearly", "Yearly"),
	}
}

func newRevenuePicker(t *testing.T, selection *string) *Model[string] {
	t.Helper()
	cfg := picker.DefaultConfig().With(picker.WithAnimation(anim.Instant))
	return New("revenue", picker.Bind(selection), revenueChildren(), cfg)
}

// drain runs cmd and everything it batches, feeding picker messages back
// into m. Selection changes are collected.
func drain(t *testing.T, m *Model[string], cmd tea.Cmd) []SelectionChangedMsg {
	t.Helper()
	var changes []SelectionChangedMsg
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		if steps > 100 {
			t.Fatal("command queue did not drain")
		}
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		switch msg := next().(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case SelectionChangedMsg:
			changes = append(changes, msg)
		case nil:
		default:
			var follow tea.Cmd
			m, follow = m.Update(msg)
			queue = append(queue, follow)
		}
	}
	return changes
}

func click(m *Model[string], col, row int) tea.Cmd {
	_, cmd := m.Update(tea.MouseClickMsg{X: col, Y: row, Button: tea.MouseLeft})
	return cmd
}

func motion(m *Model[string], col, row int) tea.Cmd {
	_, cmd := m.Update(tea.MouseMotionMsg{X: col, Y: row, Button: tea.MouseLeft})
	return cmd
}

func release(m *Model[string], col, row int) tea.Cmd {
	_, cmd := m.Update(tea.MouseReleaseMsg{X: col, Y: row, Button: tea.MouseLeft})
	return cmd
}

func TestLayoutGeometry(t *testing.T) {
	l := computeLayout(picker.DefaultConfig(), geom.DefaultCellMetrics, revenueChildren())
	if l.cols != 46 || l.rows != 5 {
		t.Fatalf("track = %dx%d, want 46x5", l.cols, l.rows)
	}
	if l.container != geom.R(0, 0, 276, 40) {
		t.Fatalf("container = %+v", l.container)
	}
	wantCols := []int{3, 13, 24, 37}
	for i, s := range l.slots {
		if s.col != wantCols[i] || s.row != 2 {
			t.Fatalf("slot %d at (%d,%d), want (%d,2)", i, s.col, s.row, wantCols[i])
		}
	}
	if got := l.slots[0].bounds; got != geom.R(18, 14, 36, 8) {
		t.Fatalf("weekly bounds = %+v", got)
	}
}

func TestLayoutKeepsFirstLineOnly(t *testing.T) {
	l := computeLayout(picker.DefaultConfig(), geom.DefaultCellMetrics, []Child[int]{
		Tagged(1, "one\ntwo"),
		Tagged(2, "\x1b[31mred\x1b[0m"),
	})
	if l.slots[0].text != "one" || l.slots[1].text != "red" {
		t.Fatalf("texts = %q, %q", l.slots[0].text, l.slots[1].text)
	}
}

func TestInitialCapsuleOnSelection(t *testing.T) {
	sel := "Weekly"
	m := newRevenuePicker(t, &sel)
	if got := m.frame.Current(); got != geom.R(6, 6, 60, 24) {
		t.Fatalf("capsule = %+v", got)
	}
	if m.Phase() != picker.PhaseIdle {
		t.Fatalf("phase = %s", m.Phase())
	}
}

func TestTapCommitsItemUnderPointer(t *testing.T) {
	sel := "Weekly"
	m := newRevenuePicker(t, &sel)

	changes := drain(t, m, click(m, 26, 2))
	if len(changes) != 0 || m.Phase() != picker.PhasePressing {
		t.Fatalf("after press: changes=%v phase=%s", changes, m.Phase())
	}
	changes = drain(t, m, release(m, 26, 2))

	if sel != "Quarterly" {
		t.Fatalf("selection = %q, want Quarterly", sel)
	}
	if len(changes) != 1 {
		t.Fatalf("changes = %v", changes)
	}
	got := changes[0]
	if got.ID != "revenue" || got.Value != "Quarterly" || got.Previous != "Weekly" || got.Path != picker.PathTap {
		t.Fatalf("change = %+v", got)
	}
	if m.Phase() != picker.PhaseIdle {
		t.Fatalf("phase after release = %s", m.Phase())
	}
}

func TestTapOnTopRowNormalizesToMiddle(t *testing.T) {
	sel := "Weekly"
	m := newRevenuePicker(t, &sel)
	drain(t, m, click(m, 40, 0))
	drain(t, m, release(m, 40, 0))
	if sel != "Yearly" {
		t.Fatalf("selection = %q, want Yearly", sel)
	}
}

func TestDragCommitsPreselection(t *testing.T) {
	sel := "Weekly"
	m := newRevenuePicker(t, &sel)

	drain(t, m, click(m, 4, 2))
	drain(t, m, motion(m, 16, 2))

	if m.Phase() != picker.PhaseDragging {
		t.Fatalf("phase = %s, want dragging", m.Phase())
	}
	st := m.ctrl.State()
	if !st.HasPreselected || st.Preselected != "Monthly" {
		t.Fatalf("preselection = %+v", st)
	}
	if !m.ctrl.Highlighted("Monthly") || m.ctrl.Highlighted("Weekly") {
		t.Fatal("highlight should follow the preselection while dragging")
	}
	if sel != "Weekly" {
		t.Fatalf("selection changed before release: %q", sel)
	}

	changes := drain(t, m, release(m, 16, 2))
	if sel != "Monthly" {
		t.Fatalf("selection = %q, want Monthly", sel)
	}
	if len(changes) != 1 || changes[0].Path != picker.PathDrag {
		t.Fatalf("changes = %+v", changes)
	}
	if got := m.frame.Current(); got != geom.R(66, 6, 66, 24) {
		t.Fatalf("capsule = %+v", got)
	}
}

func TestPreselectionIsDeferred(t *testing.T) {
	sel := "Weekly"
	m := newRevenuePicker(t, &sel)
	drain(t, m, click(m, 4, 2))

	cmd := motion(m, 16, 2)
	if st := m.ctrl.State(); st.HasPreselected && st.Preselected == "Monthly" {
		t.Fatal("preselection applied inside the pass that computed it")
	}
	drain(t, m, cmd)
	if st := m.ctrl.State(); st.Preselected != "Monthly" {
		t.Fatalf("preselection after next turn = %+v", st)
	}
}

func TestReleaseOverPaddingCommitsNothing(t *testing.T) {
	sel := "Weekly"
	m := newRevenuePicker(t, &sel)
	drain(t, m, click(m, 44, 2))
	changes := drain(t, m, release(m, 44, 2))
	if sel != "Weekly" || len(changes) != 0 {
		t.Fatalf("selection = %q, changes = %v", sel, changes)
	}
}

func TestClicksOutsideTrackIgnored(t *testing.T) {
	sel := "Weekly"
	m := newRevenuePicker(t, &sel)
	for _, pos := range [][2]int{{-1, 2}, {46, 2}, {10, 5}} {
		drain(t, m, click(m, pos[0], pos[1]))
		if m.Phase() != picker.PhaseIdle {
			t.Fatalf("click at %v started a gesture", pos)
		}
	}
	_, cmd := m.Update(tea.MouseClickMsg{X: 26, Y: 2, Button: tea.MouseRight})
	drain(t, m, cmd)
	if m.Phase() != picker.PhaseIdle {
		t.Fatal("right click started a gesture")
	}
	if cmd := release(m, 26, 2); cmd != nil {
		drain(t, m, cmd)
	}
	if sel != "Weekly" {
		t.Fatalf("stray release committed %q", sel)
	}
}

func TestStalePreselectAfterReleaseIgnored(t *testing.T) {
	sel := "Weekly"
	m := newRevenuePicker(t, &sel)
	drain(t, m, click(m, 4, 2))
	drain(t, m, release(m, 4, 2))

	m.Update(preselectMsg[string]{id: "revenue", value: "Yearly"})
	if st := m.ctrl.State(); st.HasPreselected {
		t.Fatalf("late preselection revived the gesture: %+v", st)
	}
	m.Update(preselectMsg[string]{id: "other", value: "Yearly"})
}

func TestKeyboardSelection(t *testing.T) {
	sel := "Monthly"
	m := newRevenuePicker(t, &sel)

	_, cmd := m.Update(tea.KeyPressMsg{Code: 'l'})
	if cmd != nil || sel != "Monthly" {
		t.Fatal("keys should be ignored while blurred")
	}

	m.Focus()
	tests := []struct {
		key  tea.KeyPressMsg
		want string
	}{
		{tea.KeyPressMsg{Code: 'l'}, "Quarterly"},
		{tea.KeyPressMsg{Code: tea.KeyRight}, "Yearly"},
		{tea.KeyPressMsg{Code: tea.KeyRight}, "Yearly"},
		{tea.KeyPressMsg{Code: 'h'}, "Quarterly"},
		{tea.KeyPressMsg{Code: tea.KeyHome}, "Weekly"},
		{tea.KeyPressMsg{Code: tea.KeyEnd}, "Yearly"},
	}
	for _, tt := range tests {
		_, cmd := m.Update(tt.key)
		changes := drain(t, m, cmd)
		if sel != tt.want {
			t.Fatalf("after %s selection = %q, want %q", tt.key.String(), sel, tt.want)
		}
		for _, c := range changes {
			if c.Path != picker.PathKey {
				t.Fatalf("key commit path = %s", c.Path)
			}
		}
	}
}

func TestUntaggedChildrenAreNotSelectable(t *testing.T) {
	sel := 1
	m := New("sep", picker.Bind(&sel), []Child[int]{
		Tagged(1, "a"),
		Untagged[int]("|"),
		Tagged(2, "b"),
	}, picker.DefaultConfig().With(picker.WithAnimation(anim.Instant)))

	if n := len(m.ctrl.Last().Items); n != 2 {
		t.Fatalf("registered %d items, want 2", n)
	}
	// "|" sits at column 8.
	_, cmd := m.Update(tea.MouseClickMsg{X: 8, Y: 2, Button: tea.MouseLeft})
	_ = cmd
	_, cmd = m.Update(tea.MouseReleaseMsg{X: 8, Y: 2, Button: tea.MouseLeft})
	if cmd != nil {
		cmd()
	}
	if sel != 1 {
		t.Fatalf("selection = %d, want 1", sel)
	}
}

func TestMissingSelectionHidesCapsule(t *testing.T) {
	sel := "Daily"
	m := newRevenuePicker(t, &sel)
	if got := m.frame.Current(); !got.IsZero() {
		t.Fatalf("capsule = %+v, want zero", got)
	}
	out := ansi.Strip(m.View())
	if !strings.Contains(out, "Weekly") {
		t.Fatalf("view missing labels:\n%s", out)
	}
}

func TestViewRendersTrack(t *testing.T) {
	sel := "Weekly"
	m := newRevenuePicker(t, &sel)
	lines := strings.Split(ansi.Strip(m.View()), "\n")
	if len(lines) != 5 {
		t.Fatalf("view has %d lines, want 5", len(lines))
	}
	if got := ansi.StringWidth(lines[2]); got != 46 {
		t.Fatalf("row width = %d, want 46", got)
	}
	if !strings.HasPrefix(lines[2][3:], "Weekly") {
		t.Fatalf("row 2 = %q", lines[2])
	}

	m.SetLabel("Revenue")
	labeled := ansi.Strip(m.View())
	if !strings.Contains(labeled, "Revenue") {
		t.Fatalf("label missing:\n%s", labeled)
	}
}

func TestViewUsesFrameCache(t *testing.T) {
	sel := "Weekly"
	m := newRevenuePicker(t, &sel)
	first := m.View()
	if second := m.View(); second != first {
		t.Fatal("unchanged picker rendered differently")
	}
	drain(t, m, click(m, 26, 2))
	drain(t, m, release(m, 26, 2))
	if m.View() == first {
		t.Fatal("selection change did not re-render")
	}
}

func TestAnimationTicksUntilSettled(t *testing.T) {
	sel := "Weekly"
	m := New("revenue", picker.Bind(&sel), revenueChildren(), picker.DefaultConfig())
	m.Focus()

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnd})
	if cmd == nil || !m.Animating() {
		t.Fatal("expected an animated move")
	}
	start := m.frame.Current()

	stale := frameMsg{id: "revenue", seq: m.seq - 1}
	m.Update(stale)
	if m.frame.Current() != start {
		t.Fatal("stale tick advanced the animation")
	}

	for i := 0; i < 10*anim.FPS && m.Animating(); i++ {
		m.Update(frameMsg{id: "revenue", seq: m.seq})
	}
	if m.Animating() {
		t.Fatal("animation did not settle")
	}
	if got, want := m.frame.Current(), m.frame.Target(); got != want {
		t.Fatalf("settled at %+v, want %+v", got, want)
	}
}

func TestBlurCancelsGesture(t *testing.T) {
	sel := "Weekly"
	m := newRevenuePicker(t, &sel)
	m.Focus()
	drain(t, m, click(m, 4, 2))
	if m.Blur(); m.Phase() != picker.PhaseIdle || m.Focused() {
		t.Fatal("blur should end the gesture")
	}
	drain(t, m, release(m, 26, 2))
	if sel != "Weekly" {
		t.Fatalf("release after blur committed %q", sel)
	}
}

func TestSetChildrenRelayouts(t *testing.T) {
	sel := "Monthly"
	m := newRevenuePicker(t, &sel)
	if cols, rows := m.Size(); cols != 46 || rows != 5 {
		t.Fatalf("Size = %dx%d, want 46x5", cols, rows)
	}

	drain(t, m, m.SetChildren(revenueChildren()[:2]))
	if cols, rows := m.Size(); cols != 23 || rows != 5 {
		t.Fatalf("Size = %dx%d, want 23x5", cols, rows)
	}
	if got := m.ctrl.Last().Settled; got != geom.R(66, 6, 66, 24) {
		t.Fatalf("settled = %+v", got)
	}

	m.SetLabel("Revenue")
	if m.Label() != "Revenue" || !strings.Contains(ansi.Strip(m.View()), "Revenue") {
		t.Fatalf("label not rendered:\n%s", ansi.Strip(m.View()))
	}
}

func TestExternalSelectionChangeMovesCapsule(t *testing.T) {
	sel := "Weekly"
	m := newRevenuePicker(t, &sel)

	sel = "Yearly"
	_, cmd := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	drain(t, m, cmd)

	want := geom.R(210, 6, 60, 24)
	if got := m.ctrl.Last().Settled; got != want {
		t.Fatalf("settled = %+v, want %+v", got, want)
	}
	if got := m.frame.Current(); got != want {
		t.Fatalf("capsule = %+v, want %+v", got, want)
	}
	if !m.ctrl.Highlighted("Yearly") || m.ctrl.Highlighted("Weekly") {
		t.Fatal("highlight should follow the binding")
	}
}

func TestViewCatchesUpWithBinding(t *testing.T) {
	sel := "Weekly"
	m := New("revenue", picker.Bind(&sel), revenueChildren(), picker.DefaultConfig())

	sel = "Yearly"
	m.View()
	if got := m.frame.Current(); got != geom.R(210, 6, 60, 24) {
		t.Fatalf("capsule = %+v, want it on Yearly", got)
	}
	if m.Sync() != nil {
		t.Fatal("Sync after View should have nothing to do")
	}
}

func TestCapsuleScalesWhilePressedOrDragged(t *testing.T) {
	tests := []struct {
		name  string
		moves func(m *Model[string]) tea.Cmd
		want  float64
	}{
		{
			name:  "press on capsule",
			moves: func(m *Model[string]) tea.Cmd { return click(m, 4, 2) },
			want:  pressedScale,
		},
		{
			name:  "press off capsule",
			moves: func(m *Model[string]) tea.Cmd { return click(m, 26, 2) },
			want:  1,
		},
		{
			name: "drag from off capsule",
			moves: func(m *Model[string]) tea.Cmd {
				return tea.Batch(click(m, 26, 2), motion(m, 28, 2))
			},
			want: pressedScale,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := "Weekly"
			m := newRevenuePicker(t, &sel)
			drain(t, m, tt.moves(m))
			if got := m.scale.Target(); got != tt.want {
				t.Fatalf("scale target = %v, want %v", got, tt.want)
			}
			drain(t, m, release(m, 28, 2))
			if got := m.scale.Target(); got != 1 {
				t.Fatalf("scale target after release = %v, want 1", got)
			}
		})
	}
}
