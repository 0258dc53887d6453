package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Focus       key.Binding
	NudgeLeft   key.Binding
	NudgeRight  key.Binding
	ScrollLeft  key.Binding
	ScrollRight key.Binding
	ZoomIn      key.Binding
	ZoomOut     key.Binding
	Play        key.Binding
	StepDown    key.Binding
	StepUp      key.Binding
	Snapshot    key.Binding
	Reset       key.Binding
	Export      key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "tutamaç"),
		),
		NudgeLeft: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/→", "kaydır"),
		),
		NudgeRight: key.NewBinding(
			key.WithKeys("right", "l"),
		),
		ScrollLeft: key.NewBinding(
			key.WithKeys("shift+left", "H"),
			key.WithHelp("⇧←/→", "şerit"),
		),
		ScrollRight: key.NewBinding(
			key.WithKeys("shift+right", "L"),
		),
		ZoomIn: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+/-", "zoom"),
		),
		ZoomOut: key.NewBinding(
			key.WithKeys("-", "_"),
		),
		Play: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "oynat"),
		),
		StepDown: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[/]", "adım"),
		),
		StepUp: key.NewBinding(
			key.WithKeys("]"),
		),
		Snapshot: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "kare"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "sıfırla"),
		),
		Export: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "dışa aktar"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "çıkış"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.NudgeLeft, k.ScrollLeft, k.ZoomIn, k.Play, k.StepDown, k.Snapshot, k.Reset, k.Export, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Focus, k.NudgeLeft, k.NudgeRight, k.StepDown, k.StepUp},
		{k.ScrollLeft, k.ScrollRight, k.ZoomIn, k.ZoomOut},
		{k.Play, k.Snapshot, k.Reset, k.Export, k.Quit},
	}
}
