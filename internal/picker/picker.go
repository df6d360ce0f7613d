package picker

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/harwell/idev/internal/iosdeploy"
	"github.com/harwell/idev/internal/ui"
)

// deviceItem adapts a device record to the bubbles list item interface.
type deviceItem struct {
	device iosdeploy.Device
}

func (i deviceItem) Title() string { return i.device.Name }

func (i deviceItem) Description() string {
	return fmt.Sprintf("%s · %s · %s", i.device.ModelName, i.device.Target.Arch, i.device.Identifier)
}

func (i deviceItem) FilterValue() string {
	return i.device.Name + " " + i.device.ModelName + " " + i.device.Identifier
}

// pickerKeyMap defines key bindings for the picker screen
type pickerKeyMap struct {
	Select key.Binding
	Quit   key.Binding
}

var pickerKeys = pickerKeyMap{
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// model is the bubbletea model for the device picker.
type model struct {
	list     list.Model
	selected *iosdeploy.Device
	quit     bool
}

func newModel(devices []iosdeploy.Device) model {
	items := make([]list.Item, 0, len(devices))
	for _, d := range devices {
		items = append(items, deviceItem{device: d})
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(ui.PrimaryColor).
		BorderLeftForeground(ui.PrimaryColor)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(ui.MutedColor).
		BorderLeftForeground(ui.PrimaryColor)

	l := list.New(items, delegate, ui.GetTerminalWidth(), listHeight(len(devices)))
	l.Title = "Connected iOS devices"
	l.Styles.Title = lipgloss.NewStyle().
		Foreground(ui.TextColor).
		Background(ui.PrimaryColor).
		Padding(0, 1)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{pickerKeys.Select}
	}

	return model{list: l}
}

// listHeight sizes the list to its content, capped for small terminals.
func listHeight(devices int) int {
	// Three rows per item plus title and help lines.
	h := devices*3 + 6
	if h > 24 {
		h = 24
	}
	return h
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		// Don't intercept keys while the filter input is active.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, pickerKeys.Select):
			if item, ok := m.list.SelectedItem().(deviceItem); ok {
				d := item.device
				m.selected = &d
			}
			return m, tea.Quit
		case key.Matches(msg, pickerKeys.Quit):
			m.quit = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) View() string {
	return m.list.View()
}

// Pick shows an interactive list of devices and returns the one the
// user selects. Returns nil without error if the user quits without
// selecting.
func Pick(devices []iosdeploy.Device) (*iosdeploy.Device, error) {
	if len(devices) == 0 {
		return nil, fmt.Errorf("no devices to pick from")
	}

	final, err := tea.NewProgram(newModel(devices)).Run()
	if err != nil {
		return nil, fmt.Errorf("picker failed: %w", err)
	}

	m, ok := final.(model)
	if !ok {
		return nil, fmt.Errorf("picker returned unexpected model type %T", final)
	}
	if m.quit {
		return nil, nil
	}
	return m.selected, nil
}
