package debugui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/railgun/ecs"
)

type entityRow struct {
	Id         ecs.EntityId
	Slot       uint32
	Generation uint32
	Components []string
}

// EntityBrowser lists live entities with their attached component types.
// Selecting a row drives the companion inspector window.
type EntityBrowser struct {
	rows          []entityRow
	lastCount     int
	selected      ecs.EntityId
	filterText    string
	pageSize      int
	currentPage   int
	sortColumn    int
	sortAscending bool
}

// NewEntityBrowser creates a browser showing pageSize entities per page.
func NewEntityBrowser(pageSize int) *EntityBrowser {
	return &EntityBrowser{
		pageSize:      pageSize,
		sortAscending: true,
	}
}

// Selected returns the currently selected entity, or InvalidEntityId.
func (eb *EntityBrowser) Selected() ecs.EntityId {
	return eb.selected
}

// Render draws the browser window.
func (eb *EntityBrowser) Render(storage *ecs.Storage) {
	if !imgui.BeginV("Entity Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	eb.rebuildIfStale(storage)

	imgui.InputTextWithHint("##search", "Search...", &eb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear") {
		eb.filterText = ""
		eb.currentPage = 0
	}
	imgui.SameLine()
	if imgui.Button("Refresh") {
		eb.rows = nil
	}

	filtered := eb.filteredRows()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Entity ID")
		imgui.TableSetupColumn("Slot")
		imgui.TableSetupColumn("Gen")
		imgui.TableSetupColumn("Components")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			eb.sortColumn = int(spec.ColumnIndex())
			eb.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			eb.sortRows()
			sortSpecs.SetSpecsDirty(false)
		}

		startIdx := eb.currentPage * eb.pageSize
		endIdx := startIdx + eb.pageSize
		if endIdx > len(filtered) {
			endIdx = len(filtered)
		}

		for i := startIdx; i < endIdx; i++ {
			row := filtered[i]
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := eb.selected == row.Id
			if imgui.SelectableBoolV(fmt.Sprintf("%d", row.Id), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				eb.selected = row.Id
			}

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", row.Slot))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", row.Generation))

			imgui.TableNextColumn()
			imgui.Text(strings.Join(row.Components, ", "))
		}

		imgui.EndTable()
	}

	if len(filtered) > eb.pageSize {
		totalPages := (len(filtered) + eb.pageSize - 1) / eb.pageSize
		imgui.Text(fmt.Sprintf("Page %d / %d (%d entities)", eb.currentPage+1, totalPages, len(filtered)))
		imgui.SameLine()
		if imgui.Button("Prev") && eb.currentPage > 0 {
			eb.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && eb.currentPage < totalPages-1 {
			eb.currentPage++
		}
	} else {
		imgui.Text(fmt.Sprintf("Total: %d entities", len(filtered)))
	}

	imgui.End()
}

// rebuildIfStale refreshes the row cache when the live entity count moves.
// Component changes without a spawn or delete are picked up by Refresh.
func (eb *EntityBrowser) rebuildIfStale(storage *ecs.Storage) {
	if eb.rows != nil && eb.lastCount == storage.Count() {
		return
	}

	eb.rows = make([]entityRow, 0, storage.Count())
	for id := range storage.Entities() {
		types := storage.ComponentTypes(id)
		names := make([]string, len(types))
		for i, t := range types {
			names[i] = t.String()
		}
		eb.rows = append(eb.rows, entityRow{
			Id:         id,
			Slot:       id.Slot(),
			Generation: id.Generation(),
			Components: names,
		})
	}
	eb.lastCount = storage.Count()
	eb.sortRows()
}

func (eb *EntityBrowser) sortRows() {
	sort.Slice(eb.rows, func(i, j int) bool {
		a, b := eb.rows[i], eb.rows[j]
		var less bool

		switch eb.sortColumn {
		case 1:
			less = a.Slot < b.Slot
		case 2:
			less = a.Generation < b.Generation
		case 3:
			less = strings.Join(a.Components, ",") < strings.Join(b.Components, ",")
		default:
			less = a.Id < b.Id
		}

		if !eb.sortAscending {
			return !less
		}
		return less
	})
}

func (eb *EntityBrowser) filteredRows() []entityRow {
	if eb.filterText == "" {
		return eb.rows
	}

	filterLower := strings.ToLower(eb.filterText)
	filtered := make([]entityRow, 0, len(eb.rows))
	for _, row := range eb.rows {
		idStr := fmt.Sprintf("%d", row.Id)
		componentsStr := strings.ToLower(strings.Join(row.Components, " "))
		if !strings.Contains(idStr, filterLower) && !strings.Contains(componentsStr, filterLower) {
			continue
		}
		filtered = append(filtered, row)
	}
	return filtered
}
