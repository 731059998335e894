package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeevanlakshya/plan733/internal/config"
	"github.com/jeevanlakshya/plan733/internal/domain"
	"github.com/jeevanlakshya/plan733/internal/quote"
	"github.com/jeevanlakshya/plan733/internal/tui/scenes"
	"github.com/jeevanlakshya/plan733/internal/tui/tuimsg"
)

// DefaultDeathYear is the policy year illustrated when the benefit scene opens
const DefaultDeathYear = 1

// Model represents the entire application state
type Model struct {
	// Navigation
	currentScene  Scene
	previousScene Scene

	// Terminal dimensions
	width  int
	height int

	// Product and quoting engine
	productPath string
	product     *config.Product
	engine      *quote.Engine
	logger      quote.Logger

	// Current selections
	goal      *domain.Goal
	age       int
	term      int
	deathYear int

	homeModel      *scenes.HomeModel
	goalsModel     *scenes.GoalsModel
	selectionModel *scenes.SelectionModel
	quoteModel     *scenes.QuoteModel
	benefitModel   *scenes.BenefitModel

	err     error
	loading bool
}

// NewModel creates a new application model. An empty productPath loads
// the published brochure edition.
func NewModel(productPath string, logger quote.Logger) Model {
	return Model{
		currentScene:   SceneHome,
		productPath:    productPath,
		logger:         logger,
		deathYear:      DefaultDeathYear,
		homeModel:      scenes.NewHomeModel(),
		goalsModel:     scenes.NewGoalsModel(),
		selectionModel: scenes.NewSelectionModel(),
		quoteModel:     scenes.NewQuoteModel(),
		benefitModel:   scenes.NewBenefitModel(),
		width:          80,
		height:         24,
		loading:        true,
	}
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	return loadProductCmd(m.productPath)
}

// loadProductCmd returns a command that loads the product edition
func loadProductCmd(path string) tea.Cmd {
	return func() tea.Msg {
		product, err := config.NewInputParser().LoadOrDefault(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return ProductLoadedMsg{Product: product}
	}
}

// buildQuoteCmd returns a command that quotes a selection
func buildQuoteCmd(engine *quote.Engine, cfg domain.BonusConfig, age, term int) tea.Cmd {
	return func() tea.Msg {
		q, err := engine.BuildQuote(age, term, cfg)
		if err != nil {
			return tuimsg.QuoteReadyMsg{Err: err}
		}
		display, err := engine.Display(age, term, cfg)
		if err != nil {
			return tuimsg.QuoteReadyMsg{Err: err}
		}
		return tuimsg.QuoteReadyMsg{Quote: q, Display: display}
	}
}

// CurrentScene returns the scene on screen
func (m Model) CurrentScene() Scene {
	return m.currentScene
}

// Err returns the error being shown, if any
func (m Model) Err() error {
	return m.err
}

// Selection returns the chosen goal, age and term
func (m Model) Selection() (goal *domain.Goal, age, term int) {
	return m.goal, m.age, m.term
}

// String returns a human-readable name for a scene
func (s Scene) String() string {
	switch s {
	case SceneHome:
		return "Home"
	case SceneGoals:
		return "Goals"
	case SceneSelection:
		return "Age & Term"
	case SceneQuote:
		return "Quote"
	case SceneBenefit:
		return "Benefit"
	case SceneHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// parent is the scene esc returns to
func (s Scene) parent() Scene {
	switch s {
	case SceneGoals:
		return SceneHome
	case SceneSelection:
		return SceneGoals
	case SceneQuote:
		return SceneSelection
	case SceneBenefit:
		return SceneQuote
	default:
		return SceneHome
	}
}
