package store

import "adminclient/entity"

// SeedDemo loads a handful of records so a freshly started stub has
// something to list and search.
func SeedDemo(s *Store) {
	switch s.Config().PluralName {
	case "outlets":
		s.Put(entity.Record{
			"code": "OUT-001", "name": "Mercado Central", "outlet_type": "Supermercado",
			"country": "Brasil", "state": "SP", "city": "São Paulo",
			"client": "Viva", "email": "contato@mercadocentral.com.br",
			"is_key_outlet": true, "is_smart": true, "is_active": true,
			"created_on": "2024-03-05T14:30:00Z", "created_by": "seed",
		})
		s.Put(entity.Record{
			"code": "OUT-002", "name": "Padaria Boa Vista", "outlet_type": "Padaria",
			"country": "Brasil", "state": "RJ", "city": "Rio de Janeiro",
			"client": "Viva", "is_key_outlet": false, "is_smart": false, "is_active": true,
			"created_on": "2024-05-12T09:00:00Z", "created_by": "seed",
		})
	case "assets":
		s.Put(entity.Record{
			"oem_serial_number": "SER/2024-0001", "bottler_equipment_number": "EQ-77",
			"asset_type": "Geladeira", "outlet": "Mercado Central", "outlet_code": "OUT-001",
			"client": "Viva", "is_smart": true, "latitude": -23.55, "longitude": -46.63,
			"created_on": "2024-03-05T14:30:00Z", "created_by": "seed",
		})
	case "smartdevices":
		s.Put(entity.Record{
			"mac_address": "AA:BB:CC:DD:EE:FF", "device_type": "Sensor",
			"manufacturer": "Acme", "serial_number": "SD-100", "outlet_code": "OUT-001",
			"battery_level": 87.0, "is_installed": true, "is_active": true,
			"created_on": "2024-06-01T10:15:00Z", "created_by": "seed",
		})
	case "users":
		s.Put(entity.Record{
			"upn": "maria@viva.org", "first_name": "Maria", "last_name": "Silva",
			"user_name": "maria.silva", "email": "maria@viva.org", "role": "admin",
			"is_active": true, "created_on": "2024-01-10T08:00:00Z",
		})
	}
}
