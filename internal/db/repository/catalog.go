package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"provider-catalog/internal/db"
	"provider-catalog/internal/domain"
)

// providerColumns is the listing/search projection. The detail projection in
// GetProvider names every output column explicitly as well — nothing in this
// package relies on the physical column order of the underlying tables.
const providerColumns = `
	hp.id,
	hp.npi_number,
	hp.provider_name,
	hp.provider_first_name,
	hp.provider_last_name,
	hp.provider_credentials,
	hp.facility_category_id,
	fc.display_name AS facility_category_name,
	hp.facility_type_id,
	ft.display_name AS facility_type_name,
	hp.business_city,
	hp.business_state_id,
	s.name AS business_state,
	hp.business_zip_code,
	hp.business_phone,
	hp.business_fax,
	hp.primary_taxonomy_code_id,
	hp.enumeration_date,
	hp.last_update_date,
	hp.is_active`

// CatalogRepo reads the healthcare provider catalog. The target schema comes
// from configuration, is validated at construction, and is the only
// identifier spliced into this repo's SQL.
type CatalogRepo struct {
	pool   *pgxpool.Pool
	schema string // quoted, validated schema identifier
	logger *slog.Logger
}

// NewCatalogRepo creates a CatalogRepo bound to the given target schema.
func NewCatalogRepo(pool *pgxpool.Pool, schema string, logger *slog.Logger) (*CatalogRepo, error) {
	if !db.ValidIdentifier(schema) {
		return nil, fmt.Errorf("unsafe target schema %q", schema)
	}
	return &CatalogRepo{pool: pool, schema: db.QuoteIdentifier(schema), logger: logger}, nil
}

// CountProviders counts active providers matching the filter.
func (r *CatalogRepo) CountProviders(ctx context.Context, filter domain.ProviderFilter) (int, error) {
	where, args := providerWhere(filter, 1)
	q := fmt.Sprintf(`SELECT COUNT(*) FROM %s.healthcare_providers hp WHERE %s`, r.schema, where)

	var count int
	if err := r.pool.QueryRow(ctx, q, args...).Scan(&count); err != nil {
		return 0, domain.ErrUnavailable("counting providers: %v", err)
	}
	return count, nil
}

// CountCategories counts all categories.
func (r *CatalogRepo) CountCategories(ctx context.Context) (int, error) {
	q := fmt.Sprintf(`SELECT COUNT(*) FROM %s.facility_categories`, r.schema)
	var count int
	if err := r.pool.QueryRow(ctx, q).Scan(&count); err != nil {
		return 0, domain.ErrUnavailable("counting categories: %v", err)
	}
	return count, nil
}

// CountFacilityTypes counts all facility types.
func (r *CatalogRepo) CountFacilityTypes(ctx context.Context) (int, error) {
	q := fmt.Sprintf(`SELECT COUNT(*) FROM %s.facility_types`, r.schema)
	var count int
	if err := r.pool.QueryRow(ctx, q).Scan(&count); err != nil {
		return 0, domain.ErrUnavailable("counting facility types: %v", err)
	}
	return count, nil
}

// ListCategories returns every category with distinct active-provider and
// facility-type counts, ordered by display name. Left joins keep empty
// categories in the result with zero counts.
func (r *CatalogRepo) ListCategories(ctx context.Context) ([]domain.Category, error) {
	q := fmt.Sprintf(`
		SELECT
			fc.id,
			fc.name,
			fc.display_name,
			fc.description,
			COUNT(DISTINCT hp.id) AS provider_count,
			COUNT(DISTINCT ft.id) AS facility_types_count
		FROM %[1]s.facility_categories fc
		LEFT JOIN %[1]s.facility_types ft ON ft.category_id = fc.id
		LEFT JOIN %[1]s.healthcare_providers hp
			ON hp.facility_category_id = fc.id AND hp.is_active = true
		GROUP BY fc.id, fc.name, fc.display_name, fc.description
		ORDER BY fc.display_name`, r.schema)

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, domain.ErrUnavailable("listing categories: %v", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.DisplayName, &c.Description,
			&c.ProviderCount, &c.FacilityTypesCount); err != nil {
			return nil, domain.ErrUnavailable("scanning category row: %v", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrUnavailable("reading category rows: %v", err)
	}
	return categories, nil
}

// ListFacilityTypes returns the facility types of one category ordered by
// display name. An unknown category yields an empty slice.
func (r *CatalogRepo) ListFacilityTypes(ctx context.Context, categoryID int) ([]domain.FacilityType, error) {
	q := fmt.Sprintf(`
		SELECT
			ft.id,
			ft.name,
			ft.display_name,
			ft.description,
			ft.category_id,
			fc.display_name AS category_name,
			COUNT(DISTINCT hp.id) AS provider_count
		FROM %[1]s.facility_types ft
		JOIN %[1]s.facility_categories fc ON fc.id = ft.category_id
		LEFT JOIN %[1]s.healthcare_providers hp
			ON hp.facility_type_id = ft.id AND hp.is_active = true
		WHERE ft.category_id = $1
		GROUP BY ft.id, ft.name, ft.display_name, ft.description, ft.category_id, fc.display_name
		ORDER BY ft.display_name`, r.schema)

	rows, err := r.pool.Query(ctx, q, categoryID)
	if err != nil {
		return nil, domain.ErrUnavailable("listing facility types of category %d: %v", categoryID, err)
	}
	defer rows.Close()

	types := []domain.FacilityType{}
	for rows.Next() {
		var ft domain.FacilityType
		if err := rows.Scan(&ft.ID, &ft.Name, &ft.DisplayName, &ft.Description,
			&ft.CategoryID, &ft.CategoryName, &ft.ProviderCount); err != nil {
			return nil, domain.ErrUnavailable("scanning facility type row: %v", err)
		}
		types = append(types, ft)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrUnavailable("reading facility type rows: %v", err)
	}
	return types, nil
}

// ListProviders returns active providers matching the filter, joined to
// category, facility type, and state, ordered by provider name.
func (r *CatalogRepo) ListProviders(ctx context.Context, filter domain.ProviderFilter, limit, offset int) ([]domain.Provider, error) {
	where, args := providerWhere(filter, 3)
	args = append([]any{limit, offset}, args...)
	q := fmt.Sprintf(`
		SELECT %s
		FROM %[2]s.healthcare_providers hp
		JOIN %[2]s.facility_categories fc ON fc.id = hp.facility_category_id
		JOIN %[2]s.facility_types ft ON ft.id = hp.facility_type_id
		LEFT JOIN %[2]s.states s ON s.id = hp.business_state_id
		WHERE %[3]s
		ORDER BY hp.provider_name
		LIMIT $1 OFFSET $2`, providerColumns, r.schema, where)

	return r.queryProviders(ctx, q, args...)
}

// SearchProviders matches one shared case-insensitive pattern against
// provider name, business city, and credentials, ANDed with the filter.
func (r *CatalogRepo) SearchProviders(ctx context.Context, query string, filter domain.ProviderFilter, limit int) ([]domain.Provider, error) {
	const match = "(hp.provider_name ILIKE $1 OR hp.business_city ILIKE $1 OR hp.provider_credentials ILIKE $1)"
	where, args := providerWhere(filter, 3, match)
	args = append([]any{"%" + query + "%", limit}, args...)
	q := fmt.Sprintf(`
		SELECT %s
		FROM %[2]s.healthcare_providers hp
		JOIN %[2]s.facility_categories fc ON fc.id = hp.facility_category_id
		JOIN %[2]s.facility_types ft ON ft.id = hp.facility_type_id
		LEFT JOIN %[2]s.states s ON s.id = hp.business_state_id
		WHERE %[3]s
		ORDER BY hp.provider_name
		LIMIT $2`, providerColumns, r.schema, where)

	return r.queryProviders(ctx, q, args...)
}

func (r *CatalogRepo) queryProviders(ctx context.Context, q string, args ...any) ([]domain.Provider, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, domain.ErrUnavailable("querying providers: %v", err)
	}
	defer rows.Close()

	providers := []domain.Provider{}
	for rows.Next() {
		var p domain.Provider
		if err := rows.Scan(
			&p.ID, &p.NPINumber, &p.ProviderName, &p.ProviderFirstName,
			&p.ProviderLastName, &p.ProviderCredentials,
			&p.FacilityCategoryID, &p.FacilityCategoryName,
			&p.FacilityTypeID, &p.FacilityTypeName,
			&p.BusinessCity, &p.BusinessStateID, &p.BusinessState,
			&p.BusinessZipCode, &p.BusinessPhone, &p.BusinessFax,
			&p.PrimaryTaxonomyCodeID, &p.EnumerationDate, &p.LastUpdateDate,
			&p.IsActive,
		); err != nil {
			return nil, domain.ErrUnavailable("scanning provider row: %v", err)
		}
		providers = append(providers, p)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrUnavailable("reading provider rows: %v", err)
	}
	return providers, nil
}

// GetProvider returns the full detail record for one provider, active or not,
// or a NotFoundError. Every output column is named in the projection and
// scanned into a named field.
func (r *CatalogRepo) GetProvider(ctx context.Context, id int) (*domain.ProviderDetails, error) {
	q := fmt.Sprintf(`
		SELECT
			hp.id,
			hp.npi_number,
			hp.entity_type_id,
			hp.facility_category_id,
			fc.display_name AS facility_category_name,
			hp.facility_type_id,
			ft.display_name AS facility_type_name,
			hp.provider_name,
			hp.provider_first_name,
			hp.provider_last_name,
			hp.provider_middle_name,
			hp.provider_credentials,
			hp.provider_sex,
			hp.is_sole_proprietor,
			hp.is_organization_subpart,
			hp.parent_organization_name,
			hp.ein,
			hp.business_address_line1,
			hp.business_address_line2,
			hp.business_city,
			hp.business_state_id,
			s.name AS business_state,
			hp.business_zip_code,
			hp.mailing_address_line1,
			hp.mailing_address_line2,
			hp.mailing_city,
			hp.mailing_state_id,
			ms.name AS mailing_state,
			hp.mailing_zip_code,
			hp.business_phone,
			hp.business_fax,
			hp.mailing_phone,
			hp.mailing_fax,
			hp.authorized_official_phone,
			hp.all_phones,
			hp.all_faxes,
			hp.primary_taxonomy_code_id,
			hp.primary_license_number,
			hp.license_state_id,
			hp.authorized_official_first_name,
			hp.authorized_official_last_name,
			hp.authorized_official_title,
			hp.enumeration_date,
			hp.last_update_date,
			hp.created_at,
			hp.updated_at,
			hp.is_active
		FROM %[1]s.healthcare_providers hp
		JOIN %[1]s.facility_categories fc ON fc.id = hp.facility_category_id
		JOIN %[1]s.facility_types ft ON ft.id = hp.facility_type_id
		LEFT JOIN %[1]s.states s ON s.id = hp.business_state_id
		LEFT JOIN %[1]s.states ms ON ms.id = hp.mailing_state_id
		WHERE hp.id = $1`, r.schema)

	var d domain.ProviderDetails
	err := r.pool.QueryRow(ctx, q, id).Scan(
		&d.ID, &d.NPINumber, &d.EntityTypeID,
		&d.FacilityCategoryID, &d.FacilityCategoryName,
		&d.FacilityTypeID, &d.FacilityTypeName,
		&d.ProviderName, &d.ProviderFirstName, &d.ProviderLastName,
		&d.ProviderMiddleName, &d.ProviderCredentials, &d.ProviderSex,
		&d.IsSoleProprietor, &d.IsOrganizationSubpart,
		&d.ParentOrganizationName, &d.EIN,
		&d.BusinessAddressLine1, &d.BusinessAddressLine2, &d.BusinessCity,
		&d.BusinessStateID, &d.BusinessState, &d.BusinessZipCode,
		&d.MailingAddressLine1, &d.MailingAddressLine2, &d.MailingCity,
		&d.MailingStateID, &d.MailingState, &d.MailingZipCode,
		&d.BusinessPhone, &d.BusinessFax, &d.MailingPhone, &d.MailingFax,
		&d.AuthorizedOfficialPhone, &d.AllPhones, &d.AllFaxes,
		&d.PrimaryTaxonomyCodeID, &d.PrimaryLicenseNumber, &d.LicenseStateID,
		&d.AuthorizedOfficialFirstName, &d.AuthorizedOfficialLastName,
		&d.AuthorizedOfficialTitle,
		&d.EnumerationDate, &d.LastUpdateDate, &d.CreatedAt, &d.UpdatedAt,
		&d.IsActive,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound("provider %d does not exist", id)
	}
	if err != nil {
		return nil, domain.ErrUnavailable("querying provider %d: %v", id, err)
	}
	return &d, nil
}

// ProvidersByCategory returns active-provider counts for every category,
// including zero-count ones.
func (r *CatalogRepo) ProvidersByCategory(ctx context.Context) (map[string]int, error) {
	q := fmt.Sprintf(`
		SELECT fc.display_name, COUNT(hp.id) AS provider_count
		FROM %[1]s.facility_categories fc
		LEFT JOIN %[1]s.healthcare_providers hp
			ON hp.facility_category_id = fc.id AND hp.is_active = true
		GROUP BY fc.id, fc.display_name
		ORDER BY provider_count DESC`, r.schema)

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, domain.ErrUnavailable("counting providers by category: %v", err)
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var name string
		var count int
		if err := rows.Scan(&name, &count); err != nil {
			return nil, domain.ErrUnavailable("scanning category count row: %v", err)
		}
		counts[name] = count
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrUnavailable("reading category count rows: %v", err)
	}
	return counts, nil
}

// ProvidersByState returns the top states by active-provider count. States
// with no active providers are excluded.
func (r *CatalogRepo) ProvidersByState(ctx context.Context, limit int) (map[string]int, error) {
	q := fmt.Sprintf(`
		SELECT s.name, COUNT(hp.id) AS provider_count
		FROM %[1]s.states s
		LEFT JOIN %[1]s.healthcare_providers hp
			ON hp.business_state_id = s.id AND hp.is_active = true
		WHERE s.name IS NOT NULL
		GROUP BY s.id, s.name
		HAVING COUNT(hp.id) > 0
		ORDER BY provider_count DESC
		LIMIT $1`, r.schema)

	rows, err := r.pool.Query(ctx, q, limit)
	if err != nil {
		return nil, domain.ErrUnavailable("counting providers by state: %v", err)
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var name string
		var count int
		if err := rows.Scan(&name, &count); err != nil {
			return nil, domain.ErrUnavailable("scanning state count row: %v", err)
		}
		counts[name] = count
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrUnavailable("reading state count rows: %v", err)
	}
	return counts, nil
}

// TopFacilityTypes returns the facility types with the most active providers,
// excluding types with none.
func (r *CatalogRepo) TopFacilityTypes(ctx context.Context, limit int) ([]domain.FacilityTypeCount, error) {
	q := fmt.Sprintf(`
		SELECT ft.display_name, fc.display_name AS category_name, COUNT(hp.id) AS provider_count
		FROM %[1]s.facility_types ft
		JOIN %[1]s.facility_categories fc ON fc.id = ft.category_id
		LEFT JOIN %[1]s.healthcare_providers hp
			ON hp.facility_type_id = ft.id AND hp.is_active = true
		GROUP BY ft.id, ft.display_name, fc.display_name
		HAVING COUNT(hp.id) > 0
		ORDER BY provider_count DESC
		LIMIT $1`, r.schema)

	rows, err := r.pool.Query(ctx, q, limit)
	if err != nil {
		return nil, domain.ErrUnavailable("listing top facility types: %v", err)
	}
	defer rows.Close()

	top := []domain.FacilityTypeCount{}
	for rows.Next() {
		var ftc domain.FacilityTypeCount
		if err := rows.Scan(&ftc.FacilityType, &ftc.Category, &ftc.ProviderCount); err != nil {
			return nil, domain.ErrUnavailable("scanning top facility type row: %v", err)
		}
		top = append(top, ftc)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrUnavailable("reading top facility type rows: %v", err)
	}
	return top, nil
}

// CountRecentUpdates counts providers whose record changed at or after the
// cutoff, regardless of active flag.
func (r *CatalogRepo) CountRecentUpdates(ctx context.Context, since time.Time) (int, error) {
	q := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM %s.healthcare_providers
		WHERE updated_at >= $1`, r.schema)

	var count int
	if err := r.pool.QueryRow(ctx, q, since).Scan(&count); err != nil {
		return 0, domain.ErrUnavailable("counting recent updates: %v", err)
	}
	return count, nil
}
