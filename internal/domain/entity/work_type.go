package entity

// Tipos de trabajo compartidos por Worker.Specialty, WorkItem.Type y Event.WorkType.
const (
	WorkTypePlumbing   = "plumbing"
	WorkTypeElectrical = "electrical"
	WorkTypeCarpentry  = "carpentry"
	WorkTypeGeneral    = "general"
)

// WorkTypes lista de tipos de trabajo válidos.
var WorkTypes = []string{WorkTypePlumbing, WorkTypeElectrical, WorkTypeCarpentry, WorkTypeGeneral}

// IsValidWorkType verifica si s es un tipo de trabajo válido.
func IsValidWorkType(s string) bool {
	for _, wt := range WorkTypes {
		if s == wt {
			return true
		}
	}
	return false
}
