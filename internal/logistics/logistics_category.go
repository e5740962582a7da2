package logistics

// Finance ledger categories (Romanian chart of accounts labels).
var expenseCategories = map[ExpenseType]string{
	ExpenseShipping:    "Transport - Expediere",
	ExpenseFuel:        "Transport - Combustibil",
	ExpenseMaintenance: "Intretinere Vehicule",
	ExpenseTolls:       "Transport - Taxe Rutiere",
	ExpenseParking:     "Transport - Parcare",
	ExpenseCustoms:     "Taxe Vamale",
	ExpenseWarehousing: "Depozitare",
	ExpenseOther:       "Alte Cheltuieli Logistica",
}

var movementCategories = map[MovementType]string{
	MovementReceipt:    "Achizitii Inventar",
	MovementShipment:   "Cost Bunuri Vandute (COGS)",
	MovementAdjustment: "Ajustare Inventar",
	MovementReturn:     "Retururi Inventar",
	MovementWriteOff:   "Pierderi Inventar",
}

func ExpenseCategory(t ExpenseType) string {
	return expenseCategories[t]
}

func MovementCategory(m MovementType) string {
	return movementCategories[m]
}
