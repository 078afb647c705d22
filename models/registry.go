package models

// All returns every model in migration order: parents before the tables that
// reference them.
func All() []interface{} {
	return []interface{}{
		&State{},
		&City{},
		&Municipality{},
		&Role{},
		&User{},
		&PropertyType{},
		&Feature{},
		&Property{},
		&PropertyFeature{},
		&Operation{},
		&Appointment{},
		&Conversation{},
		&Message{},
	}
}
