package entity

// Static configuration for the four portal entity types. Labels are the
// portal's Portuguese ones; callers embedding the module elsewhere pass
// their own TypeConfig instead.

const portalPrefix = "/portal_associacao"

// Assets describes the asset entity (identity: OEM serial number).
var Assets = TypeConfig{
	BaseURL:     portalPrefix + "/assets",
	Name:        "Asset",
	PluralName:  "assets",
	IdentityKey: "oem_serial_number",
	TextFields: []string{
		"asset_type", "bottler_equipment_number", "technical_id",
		"oem_serial_number", "category", "outlet", "outlet_code",
		"outlet_type", "store_location", "client", "trade_channel",
		"country", "sales_organization", "sales_office", "city", "state",
		"time_zone", "sub_client",
	},
	NumberFields:  []string{"latitude", "longitude"},
	BooleanFields: []string{"is_competition", "is_factory_asset", "is_smart", "is_vision", "prime_position"},
	ViewFields: []ViewField{
		{Label: "Número de Série OEM", Key: "oem_serial_number"},
		{Label: "Número Equipamento", Key: "bottler_equipment_number"},
		{Label: "ID Técnico", Key: "technical_id"},
		{Label: "Tipo", Key: "asset_type"},
		{Label: "Categoria", Key: "category"},
		{Label: "Outlet", Key: "outlet"},
		{Label: "Código Outlet", Key: "outlet_code"},
		{Label: "Localização na Loja", Key: "store_location"},
		{Label: "Cliente", Key: "client"},
		{Label: "Canal Comercial", Key: "trade_channel"},
		{Label: "País", Key: "country"},
		{Label: "Cidade", Key: "city"},
		{Label: "Estado", Key: "state"},
		{Label: "Latitude", Key: "latitude"},
		{Label: "Longitude", Key: "longitude"},
		{Label: "Smart", Key: "is_smart", Type: "boolean"},
		{Label: "Vision", Key: "is_vision", Type: "boolean"},
		{Label: "Concorrência", Key: "is_competition", Type: "boolean"},
		{Label: "Ativo de Fábrica", Key: "is_factory_asset", Type: "boolean"},
		{Label: "Posição Prime", Key: "prime_position", Type: "boolean"},
		{Label: "Criado em", Key: "created_on", Type: "date"},
		{Label: "Criado por", Key: "created_by"},
		{Label: "Modificado em", Key: "modified_on", Type: "date"},
		{Label: "Modificado por", Key: "modified_by"},
	},
}

// Outlets describes the outlet entity (identity: code).
var Outlets = TypeConfig{
	BaseURL:     portalPrefix + "/outlets",
	Name:        "Outlet",
	PluralName:  "outlets",
	IdentityKey: "code",
	TextFields: []string{
		"code", "name", "outlet_type", "country", "state", "city",
		"street", "address_2", "postal_code", "retailer",
		"primary_phone", "email", "mobile_phone", "client",
		"trade_channel", "market", "time_zone",
	},
	NumberFields:  []string{"latitude", "longitude", "sales_target"},
	BooleanFields: []string{"is_key_outlet", "is_smart", "is_active"},
	ViewFields: []ViewField{
		{Label: "Código", Key: "code"},
		{Label: "Nome", Key: "name"},
		{Label: "Tipo", Key: "outlet_type"},
		{Label: "Key Outlet", Key: "is_key_outlet", Type: "boolean"},
		{Label: "Smart", Key: "is_smart", Type: "boolean"},
		{Label: "Ativo", Key: "is_active", Type: "boolean"},
		{Label: "País", Key: "country"},
		{Label: "Estado", Key: "state"},
		{Label: "Cidade", Key: "city"},
		{Label: "Rua", Key: "street"},
		{Label: "Endereço 2", Key: "address_2"},
		{Label: "CEP", Key: "postal_code"},
		{Label: "Latitude", Key: "latitude"},
		{Label: "Longitude", Key: "longitude"},
		{Label: "Varejista", Key: "retailer"},
		{Label: "Telefone", Key: "primary_phone"},
		{Label: "Email", Key: "email"},
		{Label: "Celular", Key: "mobile_phone"},
		{Label: "Meta Vendas", Key: "sales_target"},
		{Label: "Cliente", Key: "client"},
		{Label: "Canal Comercial", Key: "trade_channel"},
		{Label: "Mercado", Key: "market"},
		{Label: "Fuso Horário", Key: "time_zone"},
		{Label: "Criado em", Key: "created_on", Type: "date"},
		{Label: "Criado por", Key: "created_by"},
		{Label: "Modificado em", Key: "modified_on", Type: "date"},
		{Label: "Modificado por", Key: "modified_by"},
	},
}

// SmartDevices describes the smart-device entity (identity: MAC address).
var SmartDevices = TypeConfig{
	BaseURL:     portalPrefix + "/smartdevices",
	Name:        "Dispositivo",
	PluralName:  "smartdevices",
	IdentityKey: "mac_address",
	TextFields: []string{
		"device_type", "manufacturer", "mac_address", "serial_number",
		"order_serial_number", "firmware_version", "asset_serial",
		"outlet_code", "client",
	},
	NumberFields:  []string{"battery_level", "signal_strength"},
	BooleanFields: []string{"is_installed", "is_active"},
	ViewFields: []ViewField{
		{Label: "MAC Address", Key: "mac_address"},
		{Label: "Tipo", Key: "device_type"},
		{Label: "Fabricante", Key: "manufacturer"},
		{Label: "Número de Série", Key: "serial_number"},
		{Label: "Série do Pedido", Key: "order_serial_number"},
		{Label: "Firmware", Key: "firmware_version"},
		{Label: "Ativo Associado", Key: "asset_serial"},
		{Label: "Código Outlet", Key: "outlet_code"},
		{Label: "Cliente", Key: "client"},
		{Label: "Bateria", Key: "battery_level", Type: "percent"},
		{Label: "Sinal", Key: "signal_strength", Type: "percent"},
		{Label: "Instalado", Key: "is_installed", Type: "boolean"},
		{Label: "Ativo", Key: "is_active", Type: "boolean"},
		{Label: "Criado em", Key: "created_on", Type: "date"},
		{Label: "Criado por", Key: "created_by"},
		{Label: "Modificado em", Key: "modified_on", Type: "date"},
		{Label: "Modificado por", Key: "modified_by"},
	},
}

// Users describes the portal user entity (identity: UPN).
var Users = TypeConfig{
	BaseURL:     portalPrefix + "/users",
	Name:        "Usuário",
	PluralName:  "users",
	IdentityKey: "upn",
	TextFields: []string{
		"first_name", "last_name", "user_name", "upn", "email", "role",
		"client", "phone",
	},
	BooleanFields: []string{"is_active"},
	ViewFields: []ViewField{
		{Label: "UPN", Key: "upn"},
		{Label: "Nome", Key: "first_name"},
		{Label: "Sobrenome", Key: "last_name"},
		{Label: "Nome de Usuário", Key: "user_name"},
		{Label: "Email", Key: "email"},
		{Label: "Função", Key: "role"},
		{Label: "Cliente", Key: "client"},
		{Label: "Telefone", Key: "phone"},
		{Label: "Ativo", Key: "is_active", Type: "boolean"},
		{Label: "Criado em", Key: "created_on", Type: "date"},
		{Label: "Último Acesso", Key: "last_login", Type: "date"},
	},
}

// DefaultRules holds the client-side validation rules per form type.
var DefaultRules = map[string]RuleSet{
	"users":        {Required: []string{"first_name", "last_name", "user_name", "upn", "role"}, Email: []string{"email"}},
	"outlets":      {Required: []string{"code", "name"}, Email: []string{"email"}},
	"assets":       {Required: []string{"oem_serial_number"}},
	"smartdevices": {Required: []string{"mac_address"}},
}

// FieldLabels maps field names to their human-readable labels. Fields
// missing here fall back to the raw field name.
var FieldLabels = map[string]string{
	"first_name":        "Nome",
	"last_name":         "Sobrenome",
	"user_name":         "Nome de Usuário",
	"upn":               "UPN",
	"email":             "Email",
	"role":              "Função",
	"code":              "Código",
	"name":              "Nome",
	"oem_serial_number": "Número de Série OEM",
	"mac_address":       "Endereço MAC",
}
