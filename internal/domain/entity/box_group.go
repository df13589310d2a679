package entity

// BoxGroup is one box of a grouped box plot: the category label and the
// values of the plotted column for that category.
type BoxGroup struct {
	Label  string
	Values []float64
}
