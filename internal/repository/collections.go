package repository

// Collection names in the building database
const (
	UsersCollection         = "users"
	ApartmentsCollection    = "apartments"
	AgreementsCollection    = "agreements"
	AnnouncementsCollection = "announcements"
	CouponsCollection       = "coupons"
	AgreementInfoCollection = "agreementInfo"
	PaymentsCollection      = "paymentInfo"
)
