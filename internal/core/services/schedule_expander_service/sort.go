package schedule_expander_service

import "github.com/Gusi-ui/web-adiministra-sub000/internal/core/domain"

type EntrySlice []domain.ExpandedEntry

// displayCompare ordena por (rango de estado, minuto de inicio): lo que está
// en curso sale primero, luego lo pendiente, al final lo completado.
// La misma regla en todas las pantallas
func displayCompare(a, b domain.ExpandedEntry) int {
	if a.Status.Rank() != b.Status.Rank() {
		return a.Status.Rank() - b.Status.Rank()
	}
	return a.Start.Minutes() - b.Start.Minutes()
}

// quickSort ordena una EntrySlice con partición en tres partes
func (s EntrySlice) quickSort() EntrySlice {
	if len(s) < 2 {
		return s
	}

	// Elegimos el elemento pivote
	pivot := s[len(s)/2]

	// Partimos el slice en tres partes
	less := EntrySlice{}
	equal := EntrySlice{}
	greater := EntrySlice{}

	for _, entry := range s {
		cmp := displayCompare(entry, pivot)
		if cmp < 0 {
			less = append(less, entry)
		} else if cmp == 0 {
			equal = append(equal, entry)
		} else {
			greater = append(greater, entry)
		}
	}

	// Ordenamos recursivamente las particiones y las unimos
	return append(append(less.quickSort(), equal...), greater.quickSort()...)
}

// SortForDisplay devuelve los tramos en el orden de los listados.
// Los estados deben estar ya aplicados con ApplyStatus
func SortForDisplay(entries []domain.ExpandedEntry) []domain.ExpandedEntry {
	return EntrySlice(entries).quickSort()
}
