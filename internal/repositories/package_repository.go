package repositories

import (
	"database/sql"

	"github.com/RGA-goaltending/rga/internal/domain"
	"github.com/RGA-goaltending/rga/internal/domain/models"

	"github.com/google/uuid"
)

// PackageRepository manages the admin-curated price tiers.
type PackageRepository struct {
	DB *sql.DB
}

func (r PackageRepository) List() ([]models.PackageTier, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, price, price5, price10, people_count, max_quantity, sort_order
		FROM packages ORDER BY sort_order ASC, name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.PackageTier{}
	for rows.Next() {
		var p models.PackageTier
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Price5, &p.Price10, &p.PeopleCount, &p.MaxQuantity, &p.SortOrder); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r PackageRepository) Create(p models.PackageTier) (models.PackageTier, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	_, err := r.DB.Exec(`
		INSERT INTO packages (id, name, price, price5, price10, people_count, max_quantity, sort_order)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, p.ID, p.Name, p.Price, p.Price5, p.Price10, p.PeopleCount, p.MaxQuantity, p.SortOrder)
	if err != nil {
		return models.PackageTier{}, err
	}
	return p, nil
}

func (r PackageRepository) Delete(id string) error {
	res, err := r.DB.Exec(`DELETE FROM packages WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "package"}
	}
	return nil
}
