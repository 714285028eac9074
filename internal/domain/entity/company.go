package entity

// CompanyProfile holds the issuer's details used on every invoice: the SEPA
// beneficiary (name, IBAN, BIC) and the default payment term. It comes from
// configuration; company CRUD lives outside this service.
type CompanyProfile struct {
	Name            string
	IBAN            string
	BIC             string
	PaymentTermDays int
}
