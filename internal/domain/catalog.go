package domain

import "time"

// Category is a top-level grouping of healthcare provider types.
// ProviderCount and FacilityTypesCount are aggregated fresh per query and
// cover active providers only.
type Category struct {
	ID                 int     `json:"id"`
	Name               string  `json:"name"`
	DisplayName        string  `json:"display_name"`
	Description        *string `json:"description"`
	ProviderCount      int     `json:"provider_count"`
	FacilityTypesCount int     `json:"facility_types_count"`
}

// FacilityType is a provider classification nested under exactly one category.
type FacilityType struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	DisplayName   string  `json:"display_name"`
	Description   *string `json:"description"`
	CategoryID    int     `json:"category_id"`
	CategoryName  string  `json:"category_name"`
	ProviderCount int     `json:"provider_count"`
}

// Provider is the listing/search projection of a healthcare provider,
// joined to its category, facility type, and business state.
type Provider struct {
	ID                    int        `json:"id"`
	NPINumber             *string    `json:"npi_number"`
	ProviderName          *string    `json:"provider_name"`
	ProviderFirstName     *string    `json:"provider_first_name"`
	ProviderLastName      *string    `json:"provider_last_name"`
	ProviderCredentials   *string    `json:"provider_credentials"`
	FacilityCategoryID    int        `json:"facility_category_id"`
	FacilityCategoryName  string     `json:"facility_category_name"`
	FacilityTypeID        int        `json:"facility_type_id"`
	FacilityTypeName      string     `json:"facility_type_name"`
	BusinessCity          *string    `json:"business_city"`
	BusinessStateID       *string    `json:"business_state_id"`
	BusinessState         *string    `json:"business_state"`
	BusinessZipCode       *string    `json:"business_zip_code"`
	BusinessPhone         *string    `json:"business_phone"`
	BusinessFax           *string    `json:"business_fax"`
	PrimaryTaxonomyCodeID *string    `json:"primary_taxonomy_code_id"`
	EnumerationDate       *time.Time `json:"enumeration_date"`
	LastUpdateDate        *time.Time `json:"last_update_date"`
	IsActive              bool       `json:"is_active"`
}

// ProviderDetails is the full detail record for one provider, including both
// business and mailing address sets and organizational/authorization fields.
// It is the only projection that may surface an inactive provider.
type ProviderDetails struct {
	ID                           int        `json:"id"`
	NPINumber                    *string    `json:"npi_number"`
	EntityTypeID                 *int       `json:"entity_type_id"`
	FacilityCategoryID           int        `json:"facility_category_id"`
	FacilityCategoryName         string     `json:"facility_category_name"`
	FacilityTypeID               int        `json:"facility_type_id"`
	FacilityTypeName             string     `json:"facility_type_name"`
	ProviderName                 *string    `json:"provider_name"`
	ProviderFirstName            *string    `json:"provider_first_name"`
	ProviderLastName             *string    `json:"provider_last_name"`
	ProviderMiddleName           *string    `json:"provider_middle_name"`
	ProviderCredentials          *string    `json:"provider_credentials"`
	ProviderSex                  *string    `json:"provider_sex"`
	IsSoleProprietor             *bool      `json:"is_sole_proprietor"`
	IsOrganizationSubpart        *bool      `json:"is_organization_subpart"`
	ParentOrganizationName       *string    `json:"parent_organization_name"`
	EIN                          *string    `json:"ein"`
	BusinessAddressLine1         *string    `json:"business_address_line1"`
	BusinessAddressLine2         *string    `json:"business_address_line2"`
	BusinessCity                 *string    `json:"business_city"`
	BusinessStateID              *string    `json:"business_state_id"`
	BusinessState                *string    `json:"business_state"`
	BusinessZipCode              *string    `json:"business_zip_code"`
	MailingAddressLine1          *string    `json:"mailing_address_line1"`
	MailingAddressLine2          *string    `json:"mailing_address_line2"`
	MailingCity                  *string    `json:"mailing_city"`
	MailingStateID               *string    `json:"mailing_state_id"`
	MailingState                 *string    `json:"mailing_state"`
	MailingZipCode               *string    `json:"mailing_zip_code"`
	BusinessPhone                *string    `json:"business_phone"`
	BusinessFax                  *string    `json:"business_fax"`
	MailingPhone                 *string    `json:"mailing_phone"`
	MailingFax                   *string    `json:"mailing_fax"`
	AuthorizedOfficialPhone      *string    `json:"authorized_official_phone"`
	AllPhones                    *string    `json:"all_phones"`
	AllFaxes                     *string    `json:"all_faxes"`
	PrimaryTaxonomyCodeID        *string    `json:"primary_taxonomy_code_id"`
	PrimaryLicenseNumber         *string    `json:"primary_license_number"`
	LicenseStateID               *string    `json:"license_state_id"`
	AuthorizedOfficialFirstName  *string    `json:"authorized_official_first_name"`
	AuthorizedOfficialLastName   *string    `json:"authorized_official_last_name"`
	AuthorizedOfficialTitle      *string    `json:"authorized_official_title"`
	EnumerationDate              *time.Time `json:"enumeration_date"`
	LastUpdateDate               *time.Time `json:"last_update_date"`
	CreatedAt                    *time.Time `json:"created_at"`
	UpdatedAt                    *time.Time `json:"updated_at"`
	IsActive                     bool       `json:"is_active"`
}

// CatalogOverview is a single snapshot of catalog-wide totals plus the full
// category list, stamped at retrieval time.
type CatalogOverview struct {
	TotalProviders     int        `json:"total_providers"`
	TotalCategories    int        `json:"total_categories"`
	TotalFacilityTypes int        `json:"total_facility_types"`
	Categories         []Category `json:"categories"`
	LastUpdated        time.Time  `json:"last_updated"`
}

// FacilityTypeCount is one row of the top-facility-types aggregate.
type FacilityTypeCount struct {
	FacilityType  string `json:"facility_type"`
	Category      string `json:"category"`
	ProviderCount int    `json:"provider_count"`
}

// CatalogStatistics is the composite statistics payload. ProvidersByCategory
// includes zero-count categories; ProvidersByState and TopFacilityTypes only
// include entries with at least one active provider.
type CatalogStatistics struct {
	TotalProviders      int                 `json:"total_providers"`
	TotalCategories     int                 `json:"total_categories"`
	TotalFacilityTypes  int                 `json:"total_facility_types"`
	ProvidersByCategory map[string]int      `json:"providers_by_category"`
	ProvidersByState    map[string]int      `json:"providers_by_state"`
	TopFacilityTypes    []FacilityTypeCount `json:"top_facility_types"`
	RecentUpdates       int                 `json:"recent_updates"`
	LastUpdated         time.Time           `json:"last_updated"`
}
