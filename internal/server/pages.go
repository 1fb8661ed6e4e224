package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/parser"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/ghalymotors/showroom/pkg/catalog"
	"github.com/ghalymotors/showroom/pkg/selection"
)

// pageLayout wraps page content in the shared document shell.
func (s *Server) pageLayout(title string, content ...g.Node) g.Node {
	return HTML(
		Lang("en"),
		Head(
			Meta(Charset("utf-8")),
			Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
			TitleEl(g.Text(title)),
			Script(Src("https://cdn.tailwindcss.com")),
		),
		Body(Class("bg-slate-50 text-slate-900"),
			s.navbar(),
			g.Group(content),
			s.footer(),
		),
	)
}

func (s *Server) navbar() g.Node {
	return Nav(Class("bg-white border-b border-slate-200 px-6 py-4 flex items-center justify-between"),
		A(Href("/"), Class("text-xl font-black uppercase tracking-tight"), g.Text(s.Config.Company)),
		Div(Class("flex gap-6 text-sm font-bold"),
			A(Href("/"), Class("hover:text-red-600"), g.Text("Inventory")),
			A(Href("/compare"), Class("hover:text-red-600"), g.Text("Compare")),
			A(Href("/about"), Class("hover:text-red-600"), g.Text("About")),
		),
	)
}

func (s *Server) footer() g.Node {
	return Footer(Class("mt-16 py-8 text-center text-xs text-slate-400"),
		g.Textf("%s · all prices in %s", s.Config.Company, s.Config.Currency),
	)
}

func (s *Server) handleIndexPage(w http.ResponseWriter, r *http.Request) {
	visible := selection.VisibleList(s.Catalog, s.State)

	s.pageLayout(s.Config.Company+" - Inventory",
		Main(Class("container mx-auto p-6"),
			P(Class("mb-4 text-sm text-slate-500"),
				Strong(g.Textf("%d", len(visible))),
				g.Text(" Vehicles Available"),
			),
			Div(Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-6"),
				g.Map(visible, s.vehicleCardNode),
			),
		),
	).Render(w)
}

func (s *Server) vehicleCardNode(v catalog.Vehicle) g.Node {
	return Div(Class("bg-white rounded-xl overflow-hidden border border-slate-200"),
		A(Href(fmt.Sprintf("/vehicle/%d", v.ID)),
			Img(Src(v.Thumbnail), Alt(fmt.Sprintf("%s %s", v.Make, v.Model)), Class("w-full h-48 object-cover")),
			Div(Class("p-4"),
				H4(Class("font-black uppercase"), g.Textf("%s %s", v.Make, v.Model)),
				P(Class("text-sm text-slate-500"),
					g.Textf("%d • %s Miles", v.Year, catalog.FormatNumber(v.Mileage)),
				),
				P(Class("font-black text-red-600"),
					g.Text(catalog.FormatPrice(v.Price, s.Config.Currency)),
				),
			),
		),
		Div(Class("px-4 pb-4 flex gap-2 text-xs font-bold uppercase text-slate-500"),
			g.If(s.State.Favorited(v.ID), Span(Class("text-red-500"), g.Text("Saved"))),
			g.If(s.State.Compared(v.ID), Span(Class("text-blue-500"), g.Text("Comparing"))),
		),
	)
}

func (s *Server) handleVehiclePage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid vehicle id", http.StatusBadRequest)
		return
	}
	v, ok := s.Catalog.ByID(id)
	if !ok {
		http.NotFound(w, r)
		return
	}
	s.State.OpenVehicle(id)

	s.pageLayout(fmt.Sprintf("%s %s - %s", v.Make, v.Model, s.Config.Company),
		Main(Class("container mx-auto p-6 max-w-4xl"),
			H2(Class("text-3xl font-black mb-2"), g.Textf("%s %s", v.Make, v.Model)),
			P(Class("text-slate-500 mb-1"), g.Textf("%d • %s miles", v.Year, catalog.FormatNumber(v.Mileage))),
			P(Class("text-4xl font-black text-red-600 mb-6"), g.Text(catalog.FormatPrice(v.Price, s.Config.Currency))),
			Div(Class("flex gap-2 mb-6"),
				g.Map(v.Tags, func(tag string) g.Node {
					return Span(Class("bg-red-600 text-white text-xs font-black px-3 py-1 rounded uppercase"), g.Text(tag))
				}),
			),
			H3(Class("text-xl font-black mb-4"), g.Text("Specifications")),
			Div(Class("grid grid-cols-2 md:grid-cols-3 gap-4"),
				g.Map(v.Specs, func(spec catalog.Spec) g.Node {
					return Div(Class("p-4 bg-white rounded-lg border border-slate-200"),
						P(Class("text-xs font-bold text-slate-500 uppercase mb-1"), g.Text(spec.Label)),
						P(Class("text-lg font-black"), g.Text(spec.Value)),
					)
				}),
			),
		),
	).Render(w)
}

func (s *Server) handleComparePage(w http.ResponseWriter, r *http.Request) {
	matrix, err := selection.BuildMatrix(s.compareVehicles())
	if err != nil {
		s.pageLayout("Compare - "+s.Config.Company,
			Main(Class("container mx-auto p-6"),
				P(Class("text-slate-500"), g.Text("Select at least 2 vehicles to compare")),
			),
		).Render(w)
		return
	}

	s.pageLayout("Compare - "+s.Config.Company,
		Main(Class("container mx-auto p-6"),
			H2(Class("text-3xl font-black mb-6"), g.Text("Compare Vehicles")),
			Table(Class("w-full bg-white rounded-xl border border-slate-200"),
				THead(
					Tr(Class("border-b-2 border-slate-200"),
						Th(Class("text-left p-4 font-black"), g.Text("Feature")),
						g.Map(matrix.Vehicles, func(v catalog.Vehicle) g.Node {
							return Th(Class("text-left p-4"),
								Div(Class("font-black"), g.Textf("%s %s", v.Make, v.Model)),
								Div(Class("text-sm text-red-600 font-bold"), g.Text(catalog.FormatPrice(v.Price, s.Config.Currency))),
							)
						}),
					),
				),
				TBody(
					g.Map(matrix.Rows, func(row selection.MatrixRow) g.Node {
						return Tr(Class("border-b border-slate-100"),
							Td(Class("p-4 font-bold text-slate-700"), g.Text(row.Label)),
							g.Map(row.Values, func(val string) g.Node {
								return Td(Class("p-4 text-slate-600"), g.Text(val))
							}),
						)
					}),
				),
			),
		),
	).Render(w)
}

// --- About page content ---

const aboutMarkdownContent = `
# About Ghaly Motors

Ghaly Motors is a family-run dealership offering a curated inventory of
premium vehicles.

## Visit the showroom

Browse the inventory online, save the cars you like, compare up to three side
by side, and schedule a test drive when you're ready.

## Get in touch

Use the contact form on any vehicle page and we'll get back to you within one
business day.
`

func (s *Server) handleAboutPage(w http.ResponseWriter, r *http.Request) {
	extensions := parser.CommonExtensions | parser.AutoHeadingIDs
	p := parser.NewWithExtensions(extensions)
	htmlOutput := markdown.ToHTML([]byte(aboutMarkdownContent), p, nil)

	s.pageLayout("About - "+s.Config.Company,
		Main(Class("container mx-auto p-6 max-w-3xl prose"),
			g.Raw(string(htmlOutput)),
		),
	).Render(w)
}
