package input

// ModelContext implements types.Context from a snapshot of the model
type ModelContext struct {
	Index   int
	Count   int
	Cols    int
	QueryOf string
}

func (c ModelContext) Cursor() int      { return c.Index }
func (c ModelContext) ResultCount() int { return c.Count }
func (c ModelContext) Query() string    { return c.QueryOf }

// Columns never reports less than one column
func (c ModelContext) Columns() int {
	if c.Cols < 1 {
		return 1
	}
	return c.Cols
}
