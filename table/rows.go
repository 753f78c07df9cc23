package table

import (
	"adminclient/entity"
	"adminclient/ui"
)

// Row builders mirror the listing pages' column layouts. Blank values
// render as a dash so rows keep their shape.

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// AssetRow renders one asset: serial, equipment number, type, outlet
// and the smart/normal badge.
func AssetRow(rec entity.Record) ui.RowView {
	smart := ui.Cell{Text: "Normal", Badge: "badge-secondary"}
	if rec.Bool("is_smart") {
		smart = ui.Cell{Text: "Smart", Badge: "badge-success"}
	}
	return ui.RowView{
		ID: rec.String("oem_serial_number"),
		Cells: []ui.Cell{
			{Text: dash(rec.String("oem_serial_number")), Badge: "badge-secondary"},
			{Text: dash(rec.String("bottler_equipment_number"))},
			{Text: dash(rec.String("asset_type"))},
			{Text: dash(rec.String("outlet"))},
			smart,
		},
	}
}

// OutletRow renders one outlet: code, name, type, country, client.
func OutletRow(rec entity.Record) ui.RowView {
	return ui.RowView{
		ID: rec.String("code"),
		Cells: []ui.Cell{
			{Text: dash(rec.String("code")), Badge: "badge-secondary"},
			{Text: dash(rec.String("name"))},
			{Text: dash(rec.String("outlet_type"))},
			{Text: dash(rec.String("country"))},
			{Text: dash(rec.String("client"))},
		},
	}
}

// SmartDeviceRow renders one smart device: MAC, type, manufacturer,
// serial and the installed/stock badge.
func SmartDeviceRow(rec entity.Record) ui.RowView {
	installed := ui.Cell{Text: "Estoque", Badge: "badge-secondary"}
	if rec.Bool("is_installed") {
		installed = ui.Cell{Text: "Instalado", Badge: "badge-success"}
	}
	return ui.RowView{
		ID: rec.String("mac_address"),
		Cells: []ui.Cell{
			{Text: dash(rec.String("mac_address")), Badge: "badge-secondary"},
			{Text: dash(rec.String("device_type"))},
			{Text: dash(rec.String("manufacturer"))},
			{Text: dash(rec.String("serial_number"))},
			installed,
		},
	}
}

// UserRow renders one user: UPN, name, email, role and the
// active/inactive badge.
func UserRow(rec entity.Record) ui.RowView {
	active := ui.Cell{Text: "Inativo", Badge: "badge-secondary"}
	if rec.Bool("is_active") {
		active = ui.Cell{Text: "Ativo", Badge: "badge-success"}
	}
	name := rec.String("first_name")
	if last := rec.String("last_name"); last != "" {
		if name != "" {
			name += " "
		}
		name += last
	}
	return ui.RowView{
		ID: rec.String("upn"),
		Cells: []ui.Cell{
			{Text: dash(rec.String("upn")), Badge: "badge-secondary"},
			{Text: dash(name)},
			{Text: dash(rec.String("email"))},
			{Text: dash(rec.String("role"))},
			active,
		},
	}
}
