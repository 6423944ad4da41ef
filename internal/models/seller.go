package models

import "time"

// SellerProfile describes the seller account as reported by the marketplace
// supplier API. Single-instance record, fetched independently of the catalog.
type SellerProfile struct {
	SellerID         int64     `json:"sellerId"`
	StoreURL         string    `json:"storeUrl"`
	Valuation        string    `json:"valuation"`
	FeedbackCount    int       `json:"feedbackCount"`
	RegistrationDate time.Time `json:"registrationDate"`
	TotalSales       int       `json:"totalSales"`
	BuyoutPercent    int       `json:"buyoutPercent"`
	IsPremium        bool      `json:"isPremium"`
}

// LegalEntityProfile describes the registered business entity behind the
// seller account, as published by the legal registry endpoint.
type LegalEntityProfile struct {
	SupplierID   int64  `json:"supplierId"`
	ShortName    string `json:"shortName"`
	FullName     string `json:"fullName"`
	INN          string `json:"inn"`
	OGRN         string `json:"ogrn"`
	LegalAddress string `json:"legalAddress"`
	Trademark    string `json:"trademark"`
	KPP          string `json:"kpp"`
	TaxpayerCode string `json:"taxpayerCode"`
}
