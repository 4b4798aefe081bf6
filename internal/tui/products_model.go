// Package tui implements the interactive product dashboard on Bubble Tea.
//
// ProductsModel owns a single engine.ViewState. Key presses are translated
// into ViewState operations synchronously in Update, and the catalog fetch
// runs as a tea.Cmd whose result message is the only other writer.
package tui

import (
	"context"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/language"

	"github.com/rshade/shelfview/internal/catalog"
	"github.com/rshade/shelfview/internal/display"
	"github.com/rshade/shelfview/internal/engine"
	"github.com/rshade/shelfview/internal/logging"
)

// Table column widths.
const (
	colWidthOrdinal     = 5
	colWidthID          = 6
	colWidthImage       = 28
	colWidthTitle       = 28
	colWidthDescription = 36
	colWidthPrice       = 12
	colWidthCategory    = 14
)

// productsLoadedMsg carries the result of a catalog fetch.
type productsLoadedMsg struct {
	products []catalog.Product
	err      error
}

// ProductsOptions configures a ProductsModel.
type ProductsOptions struct {
	// PageSize is the initial page size.
	PageSize int

	// PageSizes is the cycle used by the page size key. Empty disables cycling.
	PageSizes []int

	// Search and Sort seed the view before the first load.
	Search string
	Sort   engine.SortConfig

	// Locale drives title collation.
	Locale language.Tag

	// Formatter renders prices. Nil uses display.DefaultFormatter.
	Formatter *display.Formatter
}

// ProductsModel is the Bubble Tea model for the product dashboard.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type ProductsModel struct {
	// Screen and data state
	state ViewState
	view  engine.ViewState
	rows  []display.Row
	ctx   context.Context

	fetcher   catalog.Fetcher
	fetching  bool
	formatter *display.Formatter
	pageSizes []int

	// Interactive components
	table     table.Model
	textInput textinput.Model
	searching bool

	// Display configuration
	width  int
	height int

	loading *LoadingState
	err     error
}

// NewProductsModel creates a dashboard that starts by fetching the catalog.
func NewProductsModel(ctx context.Context, fetcher catalog.Fetcher, opts ProductsOptions) ProductsModel {
	if opts.Formatter == nil {
		opts.Formatter = display.DefaultFormatter()
	}
	if opts.Locale == language.Und {
		opts.Locale = language.English
	}
	if opts.Sort.Column == "" {
		opts.Sort = engine.DefaultSort()
	}

	ti := newTextInput()
	ti.SetValue(opts.Search)

	m := ProductsModel{
		state: ViewStateLoading,
		view: engine.NewViewState(opts.PageSize,
			engine.WithLocale(opts.Locale),
			engine.WithSearch(opts.Search),
			engine.WithSort(opts.Sort),
		),
		ctx:       ctx,
		fetcher:   fetcher,
		fetching:  true,
		formatter: opts.Formatter,
		pageSizes: opts.PageSizes,
		textInput: ti,
		width:     defaultWidth,
		height:    defaultHeight,
		loading:   NewLoadingState(),
	}
	m.rebuildTable()
	return m
}

// newTextInput creates the search box.
func newTextInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Search by title..."
	ti.Prompt = "/ "
	ti.CharLimit = filterInputCharLimit
	ti.Width = filterInputWidth
	return ti
}

// Init starts the spinner and the first fetch (Bubble Tea interface).
func (m ProductsModel) Init() tea.Cmd {
	return tea.Batch(m.loading.Init(), m.fetchCmd())
}

// fetchCmd runs one catalog fetch in the background.
func (m ProductsModel) fetchCmd() tea.Cmd {
	ctx, fetcher := m.ctx, m.fetcher
	return func() tea.Msg {
		products, err := fetcher.FetchAll(ctx)
		return productsLoadedMsg{products: products, err: err}
	}
}

// State returns the current screen.
func (m ProductsModel) State() ViewState { return m.state }

// ViewState returns the engine view state backing the table.
func (m ProductsModel) ViewState() engine.ViewState { return m.view }

// Err returns the last fetch error, if the error screen is showing.
func (m ProductsModel) Err() error { return m.err }

// Update handles messages and updates the model state (Bubble Tea interface).
func (m ProductsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.rebuildTable()
		return m, nil
	case productsLoadedMsg:
		return m.handleLoaded(msg)
	}

	if m.searching {
		return m.handleSearchInput(msg)
	}

	switch m.state {
	case ViewStateLoading:
		return m.handleLoadingUpdate(msg)
	case ViewStateList:
		return m.handleListUpdate(msg)
	case ViewStateDetail:
		return m.handleDetailUpdate(msg)
	case ViewStateError:
		return m.handleErrorUpdate(msg)
	case ViewStateQuitting:
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m ProductsModel) handleLoaded(msg productsLoadedMsg) (tea.Model, tea.Cmd) {
	log := logging.FromContext(m.ctx)
	m.fetching = false

	if msg.err != nil {
		log.Error().Ctx(m.ctx).Err(msg.err).Msg("catalog fetch failed")
		m.err = msg.err
		m.state = ViewStateError
		return m, nil
	}

	m.err = nil
	m.view = m.view.Load(msg.products)
	m.state = ViewStateList
	m.rebuildTable()
	log.Debug().Ctx(m.ctx).
		Int("products", len(msg.products)).
		Int("visible", len(m.view.Visible())).
		Msg("dashboard loaded")
	return m, nil
}

func (m ProductsModel) handleLoadingUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyQuit, keyCtrlC:
			m.state = ViewStateQuitting
			return m, tea.Quit
		}
		return m, nil
	}
	return m, m.loading.Update(msg)
}

func (m ProductsModel) handleSearchInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyEnter, keyEsc:
			m.searching = false
			m.textInput.Blur()
			return m, nil
		case keyCtrlC:
			m.state = ViewStateQuitting
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	if term := m.textInput.Value(); term != m.view.Search() {
		m.view = m.view.SetSearch(term)
		m.rebuildTable()
	}
	return m, cmd
}

//nolint:cyclop // One case per key binding.
func (m ProductsModel) handleListUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case keyQuit, keyCtrlC:
		m.state = ViewStateQuitting
		return m, tea.Quit
	case keySlash:
		m.searching = true
		return m, m.textInput.Focus()
	case keyEsc:
		if m.view.Search() != "" {
			m.textInput.SetValue("")
			m.view = m.view.SetSearch("")
			m.rebuildTable()
		}
		return m, nil
	case keyTitle:
		m.view = m.view.ToggleSort(engine.SortTitle)
	case keyPrice:
		m.view = m.view.ToggleSort(engine.SortPrice)
	case keyPageSize:
		m.view = m.view.SetPageSize(m.nextPageSize())
	case keyLeft, keyH, keyPgUp:
		m.view = m.view.PrevPage()
	case keyRight, keyL, keyPgDown:
		m.view = m.view.NextPage()
	case keyRefresh:
		return m.refresh()
	case keyEnter:
		if len(m.rows) > 0 {
			m.state = ViewStateDetail
		}
		return m, nil
	default:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	m.rebuildTable()
	return m, nil
}

func (m ProductsModel) handleDetailUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyQuit, keyCtrlC:
			m.state = ViewStateQuitting
			return m, tea.Quit
		case keyEsc, keyBack, keyEnter:
			m.state = ViewStateList
			return m, nil
		}
	}
	return m, nil
}

func (m ProductsModel) handleErrorUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyQuit, keyCtrlC:
			m.state = ViewStateQuitting
			return m, tea.Quit
		case keyRefresh:
			return m.refresh()
		}
	}
	return m, nil
}

// refresh starts a new fetch unless one is already in flight.
func (m ProductsModel) refresh() (tea.Model, tea.Cmd) {
	if m.fetching {
		return m, nil
	}
	logging.FromContext(m.ctx).Debug().Ctx(m.ctx).Msg("refreshing catalog")
	m.fetching = true
	m.state = ViewStateLoading
	m.loading.SetMessage("Refreshing products...")
	return m, tea.Batch(m.loading.Init(), m.fetchCmd())
}

// nextPageSize returns the page size after the current one in the cycle.
func (m ProductsModel) nextPageSize() int {
	current := m.view.PageSize()
	if len(m.pageSizes) == 0 {
		return current
	}
	for i, size := range m.pageSizes {
		if size == current {
			return m.pageSizes[(i+1)%len(m.pageSizes)]
		}
	}
	return m.pageSizes[0]
}

// selectedRow returns the row under the table cursor.
func (m ProductsModel) selectedRow() (display.Row, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.rows) {
		return display.Row{}, false
	}
	return m.rows[idx], true
}

// rebuildTable maps the current page to rows and rebuilds the table.
func (m *ProductsModel) rebuildTable() {
	m.rows = display.NewRows(m.view.Page(), m.formatter)
	m.table = newProductsTable(m.rows, m.tableHeight())
}

func (m ProductsModel) tableHeight() int {
	available := m.height - chromeHeight
	if available < minHeight {
		available = minHeight
	}
	// One extra line for the header.
	return min(available, m.view.PageSize()+1)
}

// newProductsTable builds the product table for rows.
func newProductsTable(rows []display.Row, height int) table.Model {
	columns := []table.Column{
		{Title: "#", Width: colWidthOrdinal},
		{Title: "ID", Width: colWidthID},
		{Title: "Image", Width: colWidthImage},
		{Title: "Title", Width: colWidthTitle},
		{Title: "Description", Width: colWidthDescription},
		{Title: "Price", Width: colWidthPrice},
		{Title: "Category", Width: colWidthCategory},
	}

	tableRows := make([]table.Row, len(rows))
	for i, r := range rows {
		tableRows[i] = table.Row{
			strconv.Itoa(r.Ordinal),
			strconv.Itoa(r.ID),
			r.ImageURL,
			r.Title,
			r.Description,
			r.Price,
			r.Category,
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(tableRows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = TableSelectedStyle
	t.SetStyles(s)

	return t
}
