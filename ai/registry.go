/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package ai

// Identifiers of the AIs in the registry, in declaration order.
//
// There are no identifiers for the 703s (number of processor with ISO country
// code), 710-719 (national healthcare reimbursement number) or 91-99 (company
// internal information) families; those are matched by rule and only
// reported by their raw key.
const (
	SSCC = Identifier(iota + 1)
	GTIN
	ContainedGTIN
	BatchOrLotNumber
	ProductionDate
	DueDate
	PackagingDate
	BestBeforeDate
	SellByDate
	ExpirationDate
	VariantNumber
	SerialNumber
	AdditionalItemID
	CustomerPartNumber
	MadeToOrderVariationNumber
	PackagingComponentNumber
	SecondarySerialNumber
	ReferenceToSourceEntity
	GDTI
	GLNExtensionComponent
	GCN
	VariableCount
	ItemNetWeightKg
	ItemLengthMetres
	ItemWidthMetres
	ItemHeightMetres
	ItemAreaSquareMetres
	ItemNetVolumeLitres
	ItemNetVolumeCubicMetres
	ItemNetWeightPounds
	ItemLengthInches
	ItemLengthFeet
	ItemLengthYards
	ItemWidthInches
	ItemWidthFeet
	ItemWidthYards
	ItemHeightInches
	ItemHeightFeet
	ItemHeightYards
	ItemAreaSquareInches
	ItemAreaSquareFeet
	ItemAreaSquareYards
	ItemNetWeightTroyOunces
	ItemNetVolumeOunces
	ItemNetVolumeQuarts
	ItemNetVolumeGallons
	ItemNetVolumeCubicInches
	ItemNetVolumeCubicFeet
	ItemNetVolumeCubicYards
	ContainerGrossWeightKg
	ContainerLengthMetres
	ContainerWidthMetres
	ContainerHeightMetres
	ContainerAreaSquareMetres
	ContainerVolumeLitres
	ContainerVolumeCubicMetres
	ContainerGrossWeightPounds
	ContainerLengthInches
	ContainerLengthFeet
	ContainerLengthYards
	ContainerWidthInches
	ContainerWidthFeet
	ContainerWidthYards
	ContainerHeightInches
	ContainerHeightFeet
	ContainerHeightYards
	ContainerAreaSquareInches
	ContainerAreaSquareFeet
	ContainerAreaSquareYards
	ContainerVolumeQuarts
	ContainerVolumeGallons
	ContainerVolumeCubicInches
	ContainerVolumeCubicFeet
	ContainerVolumeCubicYards
	KilogramsPerSquareMetre
	CountOfTradeItems
	AmountPayable
	AmountPayableWithCurrency
	AmountPayablePerSingleItem
	AmountPayablePerSingleItemWithCurrency
	CouponDiscountPercentage
	CustomerPurchaseOrderNumber
	ConsignmentNumber
	ShipmentNumber
	RoutingCode
	ShipToLocation
	BillToLocation
	PurchasedFromLocation
	ShipForLocation
	PhysicalLocation
	InvoicingParty
	ProductionOrServiceLocation
	ShipToPostalCode
	ShipToPostalCodeWithCountry
	CountryOfOrigin
	CountryOfInitialProcessing
	CountryOfProcessing
	CountryOfDisassembly
	CountryOfFullProcessChain
	CountrySubdivisionOfOrigin
	NATOStockNumber
	MeatCut
	ExpirationDateAndTime
	ActivePotency
	CatchArea
	FirstFreezeDate
	HarvestDate
	AquaticSpecies
	FishingGearType
	ProductionMethod
	RefurbishmentLotID
	FunctionalStatus
	RevisionStatus
	AssemblyGIAI
	RollProductDimensions
	MobilePhoneIdentifier
	GRAI
	GIAI
	PricePerUnit
	GCTIN
	IBAN
	ProductionDateAndTime
	ComponentOrPartIdentifier
	ComponentOrPartIdentifierSerialNumber
	SoftwareVersion
	GSRNProvider
	GSRNRecipient
	SRIN
	PaymentSlipReferenceNumber
	CouponCodeIdentificationNorthAmerica
	CouponLoyaltyPoints
	PaperlessCouponCodeIdentificationNorthAmerica
	ExtendedPackagingURL
	MutuallyAgreedInformation
)

// registry lists every known AI in declaration order. Order matters: when more
// than one entry matches the input, the earliest one wins. Keys are not unique;
// 7021 is declared twice and always resolves to FunctionalStatus.
//
// Based on GS1 General Specifications, Release 17.0.1.
var registry = []Entry{
	{SSCC, "00", "SSCC", NumericFixed, 18, 18},
	{GTIN, "01", "GTIN", NumericFixed, 14, 14},
	{ContainedGTIN, "02", "Contained GTIN", NumericFixed, 14, 14},
	{BatchOrLotNumber, "10", "Batch or lot number", AlphanumericVariable, 1, 20},
	{ProductionDate, "11", "Production date", Date, 6, 6},
	{DueDate, "12", "Due date", Date, 6, 6},
	{PackagingDate, "13", "Packaging date", Date, 6, 6},
	{BestBeforeDate, "15", "Best before date", Date, 6, 6},
	{SellByDate, "16", "Sell by date", Date, 6, 6},
	{ExpirationDate, "17", "Expiration date", Date, 6, 6},
	{VariantNumber, "20", "Variant number", NumericFixed, 2, 2},
	{SerialNumber, "21", "Serial number", AlphanumericVariable, 1, 20},
	{AdditionalItemID, "240", "Additional item ID", AlphanumericVariable, 1, 30},
	{CustomerPartNumber, "241", "Customer part number", AlphanumericVariable, 1, 30},
	{MadeToOrderVariationNumber, "242", "Made to order variation number", NumericVariable, 1, 6},
	{PackagingComponentNumber, "243", "Packaging component number", AlphanumericVariable, 1, 20},
	{SecondarySerialNumber, "250", "Secondary serial number", AlphanumericVariable, 1, 30},
	{ReferenceToSourceEntity, "251", "Reference to source entity", AlphanumericVariable, 1, 30},
	{GDTI, "253", "GDTI", AlphanumericVariable, 13, 17},
	{GLNExtensionComponent, "254", "GLN extension component", AlphanumericVariable, 1, 20},
	{GCN, "255", "GCN", NumericVariable, 13, 25},
	{VariableCount, "30", "Variable count", NumericVariable, 1, 8},
	{ItemNetWeightKg, "310", "Item net weight kg", Decimal, 6, 6},
	{ItemLengthMetres, "311", "Item length metres", Decimal, 6, 6},
	{ItemWidthMetres, "312", "Item width metres", Decimal, 6, 6},
	{ItemHeightMetres, "313", "Item height metres", Decimal, 6, 6},
	{ItemAreaSquareMetres, "314", "Item area square metres", Decimal, 6, 6},
	{ItemNetVolumeLitres, "315", "Item net volume litres", Decimal, 6, 6},
	{ItemNetVolumeCubicMetres, "316", "Item net volume cubic metres", Decimal, 6, 6},
	{ItemNetWeightPounds, "320", "Item net weight pounds", Decimal, 6, 6},
	{ItemLengthInches, "321", "Item length inches", Decimal, 6, 6},
	{ItemLengthFeet, "322", "Item length feet", Decimal, 6, 6},
	{ItemLengthYards, "323", "Item length yards", Decimal, 6, 6},
	{ItemWidthInches, "324", "Item width inches", Decimal, 6, 6},
	{ItemWidthFeet, "325", "Item width feet", Decimal, 6, 6},
	{ItemWidthYards, "326", "Item width yards", Decimal, 6, 6},
	{ItemHeightInches, "327", "Item height inches", Decimal, 6, 6},
	{ItemHeightFeet, "328", "Item height feet", Decimal, 6, 6},
	{ItemHeightYards, "329", "Item height yards", Decimal, 6, 6},
	{ItemAreaSquareInches, "350", "Item area square inches", Decimal, 6, 6},
	{ItemAreaSquareFeet, "351", "Item area square feet", Decimal, 6, 6},
	{ItemAreaSquareYards, "352", "Item area square yards", Decimal, 6, 6},
	{ItemNetWeightTroyOunces, "356", "Item net weight troy ounces", Decimal, 6, 6},
	{ItemNetVolumeOunces, "357", "Item net volume ounces", Decimal, 6, 6},
	{ItemNetVolumeQuarts, "360", "Item net volume quarts", Decimal, 6, 6},
	{ItemNetVolumeGallons, "361", "Item net volume gallons", Decimal, 6, 6},
	{ItemNetVolumeCubicInches, "364", "Item net volume cubic inches", Decimal, 6, 6},
	{ItemNetVolumeCubicFeet, "365", "Item net volume cubic feet", Decimal, 6, 6},
	{ItemNetVolumeCubicYards, "366", "Item net volume cubic yards", Decimal, 6, 6},
	{ContainerGrossWeightKg, "330", "Container gross weight kg", Decimal, 6, 6},
	{ContainerLengthMetres, "331", "Container length metres", Decimal, 6, 6},
	{ContainerWidthMetres, "332", "Container width metres", Decimal, 6, 6},
	{ContainerHeightMetres, "333", "Container height metres", Decimal, 6, 6},
	{ContainerAreaSquareMetres, "334", "Container area square metres", Decimal, 6, 6},
	{ContainerVolumeLitres, "335", "Container volume litres", Decimal, 6, 6},
	{ContainerVolumeCubicMetres, "336", "Container volume cubic metres", Decimal, 6, 6},
	{ContainerGrossWeightPounds, "340", "Container gross weight pounds", Decimal, 6, 6},
	{ContainerLengthInches, "341", "Container length inches", Decimal, 6, 6},
	{ContainerLengthFeet, "342", "Container length feet", Decimal, 6, 6},
	{ContainerLengthYards, "343", "Container length yards", Decimal, 6, 6},
	{ContainerWidthInches, "344", "Container width inches", Decimal, 6, 6},
	{ContainerWidthFeet, "345", "Container width feet", Decimal, 6, 6},
	{ContainerWidthYards, "346", "Container width yards", Decimal, 6, 6},
	{ContainerHeightInches, "347", "Container height inches", Decimal, 6, 6},
	{ContainerHeightFeet, "348", "Container height feet", Decimal, 6, 6},
	{ContainerHeightYards, "349", "Container height yards", Decimal, 6, 6},
	{ContainerAreaSquareInches, "353", "Container area square inches", Decimal, 6, 6},
	{ContainerAreaSquareFeet, "354", "Container area square feet", Decimal, 6, 6},
	{ContainerAreaSquareYards, "355", "Container area square yards", Decimal, 6, 6},
	{ContainerVolumeQuarts, "362", "Container volume quarts", Decimal, 6, 6},
	{ContainerVolumeGallons, "363", "Container volume gallons", Decimal, 6, 6},
	{ContainerVolumeCubicInches, "367", "Container volume cubic inches", Decimal, 6, 6},
	{ContainerVolumeCubicFeet, "368", "Container volume cubic feet", Decimal, 6, 6},
	{ContainerVolumeCubicYards, "369", "Container volume cubic yards", Decimal, 6, 6},
	{KilogramsPerSquareMetre, "337", "Kilograms per square metre", Decimal, 6, 6},
	{CountOfTradeItems, "37", "Count of trade items", NumericVariable, 1, 8},
	{AmountPayable, "390", "Amount payable", Decimal, 1, 15},
	{AmountPayableWithCurrency, "391", "Amount payable with currency", CurrencyAmount, 0, 0},
	{AmountPayablePerSingleItem, "392", "Amount payable per single item", Decimal, 1, 15},
	{AmountPayablePerSingleItemWithCurrency, "393", "Amount payable per single item with currency", CurrencyAmount, 0, 0},
	{CouponDiscountPercentage, "394", "Coupon discount percentage", Decimal, 4, 4},
	{CustomerPurchaseOrderNumber, "400", "Customer purchase order number", AlphanumericVariable, 1, 30},
	{ConsignmentNumber, "401", "Consignment number", AlphanumericVariable, 1, 30},
	{ShipmentNumber, "402", "Shipment number", NumericFixed, 17, 17},
	{RoutingCode, "403", "Routing code", AlphanumericVariable, 1, 30},
	{ShipToLocation, "410", "Ship to location", NumericFixed, 13, 13},
	{BillToLocation, "411", "Bill to location", NumericFixed, 13, 13},
	{PurchasedFromLocation, "412", "Purchased from location", NumericFixed, 13, 13},
	{ShipForLocation, "413", "Ship for location", NumericFixed, 13, 13},
	{PhysicalLocation, "414", "Physical location", NumericFixed, 13, 13},
	{InvoicingParty, "415", "Invoicing party", NumericFixed, 13, 13},
	{ProductionOrServiceLocation, "416", "Production or service location", NumericFixed, 13, 13},
	{ShipToPostalCode, "420", "Ship to postal code", AlphanumericVariable, 1, 20},
	{ShipToPostalCodeWithCountry, "421", "Ship to postal code with country", PostalCodeCountry, 0, 0},
	{CountryOfOrigin, "422", "Country of origin", NumericFixed, 3, 3},
	{CountryOfInitialProcessing, "423", "Country of initial processing", CountryList, 0, 0},
	{CountryOfProcessing, "424", "Country of processing", NumericFixed, 3, 3},
	{CountryOfDisassembly, "425", "Country of disassembly", CountryList, 0, 0},
	{CountryOfFullProcessChain, "426", "Country of full process chain", NumericFixed, 3, 3},
	{CountrySubdivisionOfOrigin, "427", "Country subdivision of origin", AlphanumericVariable, 1, 3},
	{NATOStockNumber, "7001", "NATO stock number", NumericFixed, 13, 13},
	{MeatCut, "7002", "Meat cut", AlphanumericVariable, 1, 30},
	{ExpirationDateAndTime, "7003", "Expiration date and time", DateTimeNoSeconds, 0, 0},
	{ActivePotency, "7004", "Active potency", NumericVariable, 1, 4},
	{CatchArea, "7005", "Catch area", AlphanumericVariable, 1, 12},
	{FirstFreezeDate, "7006", "First freeze date", Date, 6, 6},
	{HarvestDate, "7007", "Harvest date", DateOrDateRange, 6, 12},
	{AquaticSpecies, "7008", "Aquatic species", AlphanumericVariable, 1, 3},
	{FishingGearType, "7009", "Fishing gear type", AlphanumericVariable, 1, 10},
	{ProductionMethod, "7010", "Production method", AlphanumericVariable, 1, 2},
	{RefurbishmentLotID, "7020", "Refurbishment lot ID", AlphanumericVariable, 1, 20},
	{FunctionalStatus, "7021", "Functional status", AlphanumericVariable, 1, 20},
	{RevisionStatus, "7021", "Revision status", AlphanumericVariable, 1, 20},
	{AssemblyGIAI, "7023", "Assembly GIAI", AlphanumericVariable, 1, 30},
	{RollProductDimensions, "8001", "Roll product dimensions", NumericFixed, 14, 14},
	{MobilePhoneIdentifier, "8002", "Mobile phone identifier", AlphanumericVariable, 1, 20},
	{GRAI, "8003", "GRAI", AlphanumericVariable, 14, 30},
	{GIAI, "8004", "GIAI", AlphanumericVariable, 1, 30},
	{PricePerUnit, "8005", "Price per unit", NumericFixed, 6, 6},
	{GCTIN, "8006", "GCTIN", NumericFixed, 18, 18},
	{IBAN, "8007", "IBAN", AlphanumericVariable, 1, 34},
	{ProductionDateAndTime, "8008", "Production date and time", DateTimeOptionalMinSec, 8, 12},
	{ComponentOrPartIdentifier, "8010", "Component or part identifier", AlphanumericVariable, 1, 30},
	{ComponentOrPartIdentifierSerialNumber, "8011", "Component or part identifier serial number", NumericVariable, 1, 12},
	{SoftwareVersion, "8012", "Software version", AlphanumericVariable, 1, 20},
	{GSRNProvider, "8017", "GSRN provider", NumericFixed, 18, 18},
	{GSRNRecipient, "8018", "GSRN recipient", NumericFixed, 18, 18},
	{SRIN, "8019", "SRIN", NumericVariable, 1, 10},
	{PaymentSlipReferenceNumber, "8020", "Payment slip reference number", AlphanumericVariable, 1, 25},
	{CouponCodeIdentificationNorthAmerica, "8110", "Coupon code identification North America", AlphanumericVariable, 1, 70},
	{CouponLoyaltyPoints, "8111", "Coupon loyalty points", NumericFixed, 4, 4},
	{PaperlessCouponCodeIdentificationNorthAmerica, "8112", "Paperless coupon code identification North America", AlphanumericVariable, 1, 70},
	{ExtendedPackagingURL, "8200", "Extended packaging URL", AlphanumericVariable, 1, 70},
	{MutuallyAgreedInformation, "90", "Mutually agreed information", AlphanumericVariable, 1, 30},
}
