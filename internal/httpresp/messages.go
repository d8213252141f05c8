package httpresp

const (
	MsgCustomerLogin   = "Logged in with customer account"
	MsgRestaurantLogin = "Logged in with restaurant account"
	MsgSignup          = "Account created successfully"

	MsgMenuCreated = "Menu created successfully"
	MsgMenuDeleted = "Menu deleted successfully"
	MsgMenuList    = "Menu list retrieved"

	MsgReservationCreated   = "Reservation created successfully"
	MsgReservationUpdated   = "Reservation updated successfully"
	MsgReservationCancelled = "Reservation cancelled successfully"
	MsgReservationList      = "Reservation list retrieved"

	MsgAuditLogList = "Audit log retrieved"
)
