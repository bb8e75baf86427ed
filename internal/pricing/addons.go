package pricing

// Add-on surcharges. Spiral binding is only meaningful for document
// printing; requested on any other product it contributes nothing rather
// than failing the line. Lamination applies to every product.
const (
	SpiralUpTo80 = "up_to_80"
	Spiral81To150 = "81_150"

	LaminationID = "ID"
	LaminationA4 = "A4"
	LaminationA3 = "A3"
)

func (c *Catalog) AddonCost(addons *Addons, product Product) float64 {
	if addons == nil {
		return 0
	}

	total := 0.0

	if product == ProductDocumentPrinting {
		switch addons.SpiralBinding {
		case SpiralUpTo80:
			total += 30
		case Spiral81To150:
			total += 40
		}
	}

	switch addons.Lamination {
	case LaminationID:
		total += 15
	case LaminationA4:
		total += 40
	case LaminationA3:
		total += 60
	}

	return total
}
