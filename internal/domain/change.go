package domain

import "time"

// Field identifies one editable product attribute. The numbering follows
// the edit menu.
type Field int

const (
	FieldType Field = iota + 1
	FieldBrand
	FieldSize
	FieldColor
	FieldCondition
	FieldDescription
	FieldPurchasePrice
	FieldPurchaseDate
	FieldEstimatedValue
	FieldSalePrice
	FieldSaleDate
)

// Fields lists every editable field in menu order.
var Fields = []Field{
	FieldType, FieldBrand, FieldSize, FieldColor, FieldCondition, FieldDescription,
	FieldPurchasePrice, FieldPurchaseDate, FieldEstimatedValue, FieldSalePrice, FieldSaleDate,
}

type fieldInfo struct {
	column string
	label  string
	kind   FieldKind
}

// FieldKind tells how a raw value for a field must be coerced.
type FieldKind int

const (
	KindText FieldKind = iota
	KindAmount
	KindDate
)

var fieldTable = map[Field]fieldInfo{
	FieldType:           {"type", "Type", KindText},
	FieldBrand:          {"brand", "Brand", KindText},
	FieldSize:           {"size", "Size", KindText},
	FieldColor:          {"color", "Color", KindText},
	FieldCondition:      {"condition", "Condition", KindText},
	FieldDescription:    {"description", "Description", KindText},
	FieldPurchasePrice:  {"purchase_price", "Purchase price", KindAmount},
	FieldPurchaseDate:   {"purchase_date", "Purchase date", KindDate},
	FieldEstimatedValue: {"estimated_value", "Estimated value", KindAmount},
	FieldSalePrice:      {"sale_price", "Sale price", KindAmount},
	FieldSaleDate:       {"sale_date", "Sale date", KindDate},
}

func (f Field) Valid() bool {
	_, ok := fieldTable[f]
	return ok
}

// Column is the products column backing f, or "" for an invalid field.
func (f Field) Column() string { return fieldTable[f].column }

func (f Field) Kind() FieldKind { return fieldTable[f].kind }

// Nullable reports whether the field may be cleared back to NULL.
func (f Field) Nullable() bool { return f == FieldSalePrice || f == FieldSaleDate }

func (f Field) String() string {
	if info, ok := fieldTable[f]; ok {
		return info.label
	}
	return "Field(?)"
}

// Change overwrites a single product field. The only way to obtain a
// non-zero Change is through the Set*/Clear* constructors, so a Change
// always names a known column with a value of the right type.
type Change struct {
	field Field
	value any
}

func (c Change) Field() Field { return c.field }

// Value is the SQL argument for the column; nil stands for NULL.
func (c Change) Value() any { return c.value }

func (c Change) Valid() bool { return c.field.Valid() }

func text(f Field, s string) Change { return Change{field: f, value: s} }
func amount(f Field, v float64) Change { return Change{field: f, value: v} }
func date(f Field, t time.Time) Change { return Change{field: f, value: FormatDate(t)} }

func SetType(s string) Change { return text(FieldType, s) }
func SetBrand(s string) Change { return text(FieldBrand, s) }
func SetSize(s string) Change { return text(FieldSize, s) }
func SetColor(s string) Change { return text(FieldColor, s) }
func SetCondition(s string) Change { return text(FieldCondition, s) }
func SetDescription(s string) Change { return text(FieldDescription, s) }

func SetPurchasePrice(v float64) Change { return amount(FieldPurchasePrice, v) }
func SetEstimatedValue(v float64) Change { return amount(FieldEstimatedValue, v) }
func SetSalePrice(v float64) Change { return amount(FieldSalePrice, v) }

func SetPurchaseDate(t time.Time) Change { return date(FieldPurchaseDate, t) }
func SetSaleDate(t time.Time) Change { return date(FieldSaleDate, t) }

// ClearSalePrice puts the product back in stock.
func ClearSalePrice() Change { return Change{field: FieldSalePrice} }
func ClearSaleDate() Change { return Change{field: FieldSaleDate} }
