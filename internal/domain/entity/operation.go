package entity

import "time"

// Tipos de operación (proyecto / línea de trabajo).
const (
	OperationTypeSaaS     = "saas"
	OperationTypeProduto  = "produto"
	OperationTypeLoja     = "loja"
	OperationTypeServico  = "servico"
	OperationTypeOutro    = "outro"
)

// Estados de una operación. Las transiciones no están restringidas: cualquier
// escritor autorizado puede fijar cualquier estado.
const (
	OperationStatusPlanejamento = "planejamento"
	OperationStatusExecucao     = "execucao"
	OperationStatusFinalizado   = "finalizado"
	OperationStatusArquivado    = "arquivado"
)

// Perfiles de registro: persona física / persona jurídica.
const (
	ProfilePF = "pf"
	ProfilePJ = "pj"
)

// OperationLinks URLs asociadas a la operación, todas opcionales.
type OperationLinks struct {
	Drive  string
	Notion string
	Domain string
	Other  string
}

// Operation representa un proyecto o línea de trabajo.
type Operation struct {
	ID        string
	Name      string
	Type      string
	Status    string
	Links     OperationLinks
	Notes     string
	Profile   string // pf | pj
	CreatedBy string
	CreatedAt time.Time
}

// ValidOperationType valida el tipo contra el catálogo base.
func ValidOperationType(t string) bool {
	switch t {
	case OperationTypeSaaS, OperationTypeProduto, OperationTypeLoja, OperationTypeServico, OperationTypeOutro:
		return true
	}
	return false
}

// ValidOperationStatus valida el estado.
func ValidOperationStatus(s string) bool {
	switch s {
	case OperationStatusPlanejamento, OperationStatusExecucao, OperationStatusFinalizado, OperationStatusArquivado:
		return true
	}
	return false
}

// ValidProfile valida el perfil pf/pj.
func ValidProfile(p string) bool {
	return p == ProfilePF || p == ProfilePJ
}
