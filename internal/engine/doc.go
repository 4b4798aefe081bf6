// Package engine implements the client-side data-view pipeline for the
// product catalog: filter, sort and paginate.
//
// Every function here is pure. Filter and Sort never modify their input and
// Paginate only slices it. ViewState ties the stages together as a value:
// each operation returns a new ViewState whose visible list is always
// Sort(Filter(all, search), sort), with the current page clamped into range.
//
// Typical use:
//
//	state := engine.NewViewState(10, engine.WithLocale(language.English))
//	state = state.Load(products)
//	state = state.SetSearch("shirt").ToggleSort(engine.SortPrice)
//	page := state.Page()
package engine
