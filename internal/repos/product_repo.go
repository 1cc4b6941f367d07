package repos

import (
	"vintedmanager/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

const productCols = `
    id, type, brand, size, color, condition, description,
    purchase_price, purchase_date, estimated_value, sale_price, sale_date`

// Totals holds the two sums every metric is derived from.
type Totals struct {
	Revenue float64 `db:"revenue"`
	Gross   float64 `db:"gross"`
}

// Create inserts a product with empty sale fields and returns its id.
func (r *ProductRepo) Create(p domain.NewProduct) (int64, error) {
	res, err := r.db.Exec(`
		INSERT INTO products(type, brand, size, color, condition, description,
		                     purchase_price, purchase_date, estimated_value)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, p.Type, p.Brand, p.Size, p.Color, p.Condition, p.Description,
		p.PurchasePrice, domain.FormatDate(p.PurchaseDate), p.EstimatedValue)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Get returns sql.ErrNoRows (from sqlx.Get) when the id is unknown.
func (r *ProductRepo) Get(id int64) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `SELECT`+productCols+` FROM products WHERE id = ?`, id)
	return p, err
}

// Update writes one column. It reports whether a row matched the id.
func (r *ProductRepo) Update(id int64, c domain.Change) (bool, error) {
	if !c.Valid() {
		return false, domain.ErrUnknownField
	}
	// the column name comes from the closed field table, never from input
	res, err := r.db.Exec(`UPDATE products SET `+c.Field().Column()+` = ? WHERE id = ?`, c.Value(), id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Delete removes the product; unknown ids are not an error.
func (r *ProductRepo) Delete(id int64) error {
	_, err := r.db.Exec(`DELETE FROM products WHERE id = ?`, id)
	return err
}

// ListInStock returns unsold products in insertion order.
func (r *ProductRepo) ListInStock() ([]domain.Product, error) {
	out := []domain.Product{}
	err := r.db.Select(&out, `
		SELECT`+productCols+`
		FROM products
		WHERE sale_price IS NULL
		ORDER BY id
	`)
	return out, err
}

// ListSold returns products with a sale price, restricted to the period
// when one is given.
func (r *ProductRepo) ListSold(period *domain.Period) ([]domain.Product, error) {
	where, args := soldScope(period)
	out := []domain.Product{}
	err := r.db.Select(&out, `
		SELECT`+productCols+`
		FROM products
		WHERE `+where+`
		ORDER BY sale_date, id
	`, args...)
	return out, err
}

// SoldTotals sums sale price and sale-minus-purchase over sold products.
func (r *ProductRepo) SoldTotals(period *domain.Period) (Totals, error) {
	where, args := soldScope(period)
	var t Totals
	err := r.db.Get(&t, `
		SELECT
		  COALESCE(SUM(sale_price), 0.0) AS revenue,
		  COALESCE(SUM(sale_price - purchase_price), 0.0) AS gross
		FROM products
		WHERE `+where, args...)
	return t, err
}

// StockTotals sums estimated value and estimate-minus-purchase over
// unsold products.
func (r *ProductRepo) StockTotals() (Totals, error) {
	var t Totals
	err := r.db.Get(&t, `
		SELECT
		  COALESCE(SUM(estimated_value), 0.0) AS revenue,
		  COALESCE(SUM(estimated_value - purchase_price), 0.0) AS gross
		FROM products
		WHERE sale_price IS NULL
	`)
	return t, err
}

// soldScope compares stored YYYY-MM-DD text, which orders like the dates.
func soldScope(period *domain.Period) (string, []any) {
	where := `sale_price IS NOT NULL`
	if period == nil {
		return where, nil
	}
	from, to := period.Bounds()
	return where + ` AND sale_date >= ? AND sale_date < ?`, []any{from, to}
}
