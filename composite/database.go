package composite

import "fmt"

// materialKey indexes the database by fiber/matrix pair.
type materialKey struct {
	fiber  FiberType
	matrix MatrixType
}

// materialTable is the static material database: one record per fiber/matrix
// combination, base values at volume fraction 0.6. Slice order is the
// canonical dump order; it is stable but carries no meaning.
var materialTable = []MaterialEntry{
	{FiberCarbon, MatrixEpoxy, MaterialRecord{1500, 130, 1200, 1400, 125, 75, 18}},
	{FiberCarbon, MatrixPolyester, MaterialRecord{1200, 110, 950, 1150, 105, 62, 15}},
	{FiberCarbon, MatrixVinylEster, MaterialRecord{1350, 120, 1050, 1250, 115, 68, 16}},
	{FiberCarbon, MatrixPEEK, MaterialRecord{1800, 145, 1400, 1650, 138, 88, 25}},
	{FiberCarbon, MatrixPA6, MaterialRecord{1400, 125, 1100, 1300, 120, 70, 20}},

	{FiberGlass, MatrixEpoxy, MaterialRecord{420, 26, 280, 550, 24, 40, 27}},
	{FiberGlass, MatrixPolyester, MaterialRecord{350, 22, 230, 450, 20, 32, 22}},
	{FiberGlass, MatrixVinylEster, MaterialRecord{385, 24, 255, 500, 22, 36, 24}},
	{FiberGlass, MatrixPEEK, MaterialRecord{480, 30, 320, 620, 28, 46, 32}},
	{FiberGlass, MatrixPA6, MaterialRecord{400, 25, 270, 520, 23, 38, 26}},

	{FiberAramid, MatrixEpoxy, MaterialRecord{560, 32, 180, 480, 28, 35, 42}},
	{FiberAramid, MatrixPolyester, MaterialRecord{480, 28, 150, 410, 24, 28, 35}},
	{FiberAramid, MatrixVinylEster, MaterialRecord{520, 30, 165, 445, 26, 31, 38}},
	{FiberAramid, MatrixPEEK, MaterialRecord{620, 36, 200, 530, 32, 40, 48}},
	{FiberAramid, MatrixPA6, MaterialRecord{540, 31, 175, 460, 27, 33, 40}},

	{FiberBasalt, MatrixEpoxy, MaterialRecord{380, 24, 250, 490, 22, 38, 24}},
	{FiberBasalt, MatrixPolyester, MaterialRecord{320, 20, 210, 410, 18, 30, 20}},
	{FiberBasalt, MatrixVinylEster, MaterialRecord{350, 22, 230, 450, 20, 34, 22}},
	{FiberBasalt, MatrixPEEK, MaterialRecord{430, 27, 280, 550, 25, 43, 28}},
	{FiberBasalt, MatrixPA6, MaterialRecord{365, 23, 240, 470, 21, 36, 23}},

	{FiberNatural, MatrixEpoxy, MaterialRecord{55, 2.5, 45, 85, 3.5, 12, 10}},
	{FiberNatural, MatrixPolyester, MaterialRecord{45, 2.0, 38, 70, 2.8, 9, 8}},
	{FiberNatural, MatrixVinylEster, MaterialRecord{50, 2.2, 41, 77, 3.1, 10, 9}},
	{FiberNatural, MatrixPEEK, MaterialRecord{65, 3.0, 52, 95, 4.0, 14, 12}},
	{FiberNatural, MatrixPA6, MaterialRecord{52, 2.4, 43, 80, 3.3, 11, 9}},
}

// materialIndex provides pair lookup over materialTable. Built once at
// startup; a duplicate pair in the table is a programming error.
var materialIndex = func() map[materialKey]MaterialRecord {
	idx := make(map[materialKey]MaterialRecord, len(materialTable))
	for _, e := range materialTable {
		k := materialKey{e.Fiber, e.Matrix}
		if _, dup := idx[k]; dup {
			panic(fmt.Sprintf("duplicate material record for %s/%s", e.Fiber, e.Matrix))
		}
		idx[k] = e.Record
	}
	return idx
}()

// Lookup returns the base-property record for a fiber/matrix pair.
// A missing pair returns a *NotFoundError.
func Lookup(fiber FiberType, matrix MatrixType) (MaterialRecord, error) {
	rec, ok := materialIndex[materialKey{fiber, matrix}]
	if !ok {
		return MaterialRecord{}, &NotFoundError{Fiber: fiber, Matrix: matrix}
	}
	return rec, nil
}

// Records returns the full database in dump order. The returned slice is a
// copy; callers cannot modify the table through it.
func Records() []MaterialEntry {
	out := make([]MaterialEntry, len(materialTable))
	copy(out, materialTable)
	return out
}
