package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/clcollins/incidentrank/pkg/incident"
	"github.com/clcollins/incidentrank/pkg/rand"
)

// inputStep is the question currently asked in the input box
type inputStep int

const (
	stepNone inputStep = iota
	stepID
	stepSystem
	stepSeverity
	stepUrgency
	stepFrequency
	stepResolveID
	stepExportConfirm
	stepReportType
)

const (
	incidentIDPrefix = "INC"

	cancelledStatus     = "Operation cancelled."
	systemEmptyNotice   = "System Name cannot be empty."
	invalidLevelNotice  = "Invalid input. Please enter Low, Medium, or High."
	invalidFreqNotice   = "Invalid input. Please enter Rare, Occasional, or Frequent."
	idNotFoundNotice    = "Incident ID not found. Please try again."
	invalidChoiceNotice = "Invalid choice. Please enter 1 or 2."
)

var prompts = map[inputStep]string{
	stepID:            "Enter Incident ID (e.g. INC001): ",
	stepSystem:        "Enter System Name (e.g. Checkout Service): ",
	stepSeverity:      "Enter Severity (Low / Medium / High): ",
	stepUrgency:       "Enter Urgency (Low / Medium / High): ",
	stepFrequency:     "Enter Frequency (Rare / Occasional / Frequent): ",
	stepResolveID:     "Enter Incident ID to resolve (or type 'cancel' to go back): ",
	stepExportConfirm: "Do you want to generate an HTML report before exiting? (y/n): ",
	stepReportType:    "Report type, 1. All incidents 2. OPEN incidents (ranked by priority). Enter 1 or 2: ",
}

// draft holds the answers for a new incident until every question is answered
type draft struct {
	id        string
	system    string
	severity  string
	urgency   string
	frequency string
}

func duplicateIDNotice(id string) string {
	return fmt.Sprintf("Notice: An incident with ID '%s' already exists. Please use a unique ID.", id)
}

// startPrompt focuses the input box on the given question
func (m *model) startPrompt(step inputStep) tea.Cmd {
	debug("startPrompt", "step", step)
	if step == stepID {
		m.draft = draft{}
	}

	m.step = step
	m.input.Reset()
	m.input.Prompt = prompts[step]
	m.input.Placeholder = ""
	if step == stepID {
		m.input.Placeholder = m.suggestID()
	}

	m.table.Blur()
	return m.input.Focus()
}

// endPrompt returns focus to the table
func (m *model) endPrompt() {
	m.step = stepNone
	m.draft = draft{}
	m.input.Reset()
	m.input.Blur()
	m.input.Prompt = defaultInputPrompt
	m.input.Placeholder = ""
	m.table.Focus()
}

// suggestID returns an unused random incident ID, offered as the input placeholder
func (m *model) suggestID() string {
	for {
		id := rand.ID(incidentIDPrefix)
		if !m.store.Contains(id) {
			return id
		}
	}
}

// retry keeps the current question and clears the answer
func (m *model) retry(notice string) {
	m.setNotice(notice)
	m.input.Reset()
}

// submitInput handles the answer to the current question. Invalid answers
// re-ask the same question.
func (m model) submitInput() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.input.Value())
	debug("submitInput", "step", m.step, "value", value)

	switch m.step {
	case stepID:
		// An empty answer accepts the suggested ID
		if value == "" {
			value = m.input.Placeholder
		}
		if m.store.Contains(value) {
			m.retry(duplicateIDNotice(value))
			m.input.Placeholder = m.suggestID()
			return m, nil
		}
		m.draft.id = value
		m.setStatus("")
		m.nextPrompt(stepSystem)
		return m, nil

	case stepSystem:
		if err := incident.ValidateSystem(value); err != nil {
			m.retry(systemEmptyNotice)
			return m, nil
		}
		m.draft.system = value
		m.setStatus("")
		m.nextPrompt(stepSeverity)
		return m, nil

	case stepSeverity:
		if _, err := incident.ParseLevel(value); err != nil {
			m.retry(invalidLevelNotice)
			return m, nil
		}
		m.draft.severity = value
		m.setStatus("")
		m.nextPrompt(stepUrgency)
		return m, nil

	case stepUrgency:
		if _, err := incident.ParseLevel(value); err != nil {
			m.retry(invalidLevelNotice)
			return m, nil
		}
		m.draft.urgency = value
		m.setStatus("")
		m.nextPrompt(stepFrequency)
		return m, nil

	case stepFrequency:
		if _, err := incident.ParseFrequency(value); err != nil {
			m.retry(invalidFreqNotice)
			return m, nil
		}
		m.draft.frequency = value
		return m.finishDraft()

	case stepResolveID:
		if strings.EqualFold(value, "cancel") {
			m.endPrompt()
			m.setStatus(cancelledStatus)
			return m, nil
		}
		if err := m.resolveIncident(value); err != nil {
			if !incident.IsNotFound(err) {
				m.endPrompt()
				return m.errMsgHandler(errMsg{err})
			}
			m.retry(idNotFoundNotice)
			return m, nil
		}
		m.endPrompt()
		return m, nil

	case stepExportConfirm:
		switch strings.ToLower(value) {
		case "y", "yes":
			m.quitAfterExport = true
			m.nextPrompt(stepReportType)
			return m, nil
		}
		m.endPrompt()
		return m, tea.Quit

	case stepReportType:
		var ranked bool
		switch value {
		case "1":
			ranked = false
		case "2":
			ranked = true
		default:
			m.retry(invalidChoiceNotice)
			return m, nil
		}
		m.endPrompt()
		cmd := m.exportReport(ranked)
		return m, cmd
	}

	m.endPrompt()
	return m, nil
}

// nextPrompt moves on to the next question, keeping the input focused
func (m *model) nextPrompt(step inputStep) {
	m.step = step
	m.input.Reset()
	m.input.Prompt = prompts[step]
	m.input.Placeholder = ""
}

// finishDraft validates the complete draft and inserts it into the store
func (m model) finishDraft() (tea.Model, tea.Cmd) {
	d := m.draft
	i, err := incident.New(d.id, d.system, d.severity, d.urgency, d.frequency)
	if err != nil {
		m.endPrompt()
		return m.errMsgHandler(errMsg{err})
	}

	if err := m.addIncident(i); err != nil {
		if incident.IsDuplicateID(err) {
			// The ID was taken while the other questions were answered, eg: by an import
			cmd := m.startPrompt(stepID)
			m.setNotice(duplicateIDNotice(d.id))
			return m, cmd
		}
		m.endPrompt()
		return m.errMsgHandler(errMsg{err})
	}

	m.endPrompt()
	return m, nil
}
