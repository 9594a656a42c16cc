package client

// User-facing fallback messages, kept in Romanian to match the product.
const (
	MsgConnectivity        = "Eroare de conexiune sau formatare răspuns."
	MsgInvalidCredentials  = "Email sau parolă incorectă."
	MsgRegisterFailed      = "Înregistrarea a eșuat."
	MsgFetchEvents         = "Nu s-au putut prelua evenimentele."
	MsgFetchMyEvents       = "Eroare la preluarea evenimentelor tale."
	MsgCreateEvent         = "Eroare la crearea evenimentului."
	MsgUpdateEvent         = "Eroare la actualizare."
	MsgDeleteEvent         = "Eroare la ștergerea evenimentului."
	MsgSubmitEvent         = "Trimiterea spre aprobare a eșuat."
	MsgFetchParticipants   = "Eroare la preluarea participanților."
	MsgCheckIn             = "Check-in eșuat."
	MsgReviewEvent         = "Eroare la validarea evenimentului."
	MsgFetchRegistrations  = "Eroare la preluarea înscrierilor."
	MsgFetchFavorites      = "Eroare la preluarea favoritelor."
	MsgRegisterEvent       = "Înscrierea a eșuat. Verifică dacă ești deja înscris."
	MsgCancelRegistration  = "Anularea a eșuat."
	MsgUpdateProfile       = "Actualizarea profilului a eșuat."
	MsgFetchInterests      = "Eroare la preluarea intereselor."
	MsgUpdateInterests     = "Eroare la actualizarea intereselor."
	MsgUpdateRole          = "Actualizarea rolului a eșuat."
	MsgFetchUsers          = "Eroare la preluarea utilizatorilor."
	MsgFetchFaculties      = "Eroare la preluarea facultăților."
	MsgDeleteFaculty       = "Eroare la ștergere."
	MsgSubmitFeedback      = "Trimiterea feedback-ului a eșuat."
	MsgFetchMaterials      = "Eroare la preluarea materialelor."
	MsgUploadMaterial      = "Încărcarea materialului a eșuat."
	MsgDownloadMaterial    = "Eroare la generarea linkului de descărcare."
	MsgMarkRead            = "Eroare la marcarea notificării."
	MsgRequestFailed       = "Cererea a eșuat."
	MsgActionFailed        = "Acțiune eșuată. Reîncearcă."
	MsgUnexpected          = "A apărut o eroare neașteptată."
)
