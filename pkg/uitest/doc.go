// Package uitest provides testing utilities for Bubble Tea TUI components.
//
// [NewTestModel] accepts any model satisfying [BubbleModel], including
// models whose Update method returns the concrete type instead of
// [tea.Model]:
//
//	func TestMyComponent(t *testing.T) {
//	    t.Parallel()
//	    uitest.SetupColorProfile()
//
//	    model := NewMyModel()
//	    tm := uitest.NewTestModel(t, model, uitest.Standard)
//
//	    tm.Send(tea.KeyMsg{Type: tea.KeyEnter})
//	    output := uitest.GetFinalOutput(t, tm, time.Second)
//	}
package uitest
