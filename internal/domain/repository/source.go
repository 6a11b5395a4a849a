// Package repository define los puertos de entrada de datos. El dominio solo
// conoce estos contratos; el adaptador concreto (archivos JSON, fixtures de
// test) vive en infrastructure.
package repository

// CompanySource entrega la colección completa de registros crudos de empresas.
// Los registros llegan ya deserializados como mapas clave/valor sin tipar; la
// validación de forma es responsabilidad del dominio, no del adaptador.
type CompanySource interface {
	FetchAll() ([]map[string]any, error)
}

// UserSource entrega la colección completa de registros crudos de usuarios.
type UserSource interface {
	FetchAll() ([]map[string]any, error)
}
