package shipment

import "strings"

func isValidShipmentID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func isValidRef(ref string) bool {
	return strings.TrimSpace(ref) != ""
}
