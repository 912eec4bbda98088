package domain

type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

type SignupUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginUserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	User      *User  `json:"user"`
	AuthToken string `json:"token"`
}

// EquipmentRequest — тело запроса на добавление/изменение строки оборудования.
type EquipmentRequest struct {
	Name        string  `json:"name" validate:"required"`
	Type        string  `json:"type" validate:"required"`
	Flowrate    float64 `json:"flowrate" validate:"gte=0"`
	Pressure    float64 `json:"pressure" validate:"gte=0"`
	Temperature float64 `json:"temperature"`
}

type UploadResponse struct {
	Message       string       `json:"message"`
	DatasetID     int64        `json:"dataset_id"`
	Summary       Summary      `json:"summary"`
	EquipmentList []*Equipment `json:"equipment_list"`
}

type DatasetDetailResponse struct {
	Dataset       *Dataset     `json:"dataset"`
	Summary       Summary      `json:"summary"`
	EquipmentList []*Equipment `json:"equipment_list"`
}

type HistoryResponse struct {
	Count    int        `json:"count"`
	Datasets []*Dataset `json:"datasets"`
}

type FilterResponse struct {
	Summary       Summary      `json:"summary"`
	EquipmentList []*Equipment `json:"equipment_list"`
}

type EquipmentMutationResponse struct {
	Equipment *Equipment `json:"equipment,omitempty"`
	Summary   Summary    `json:"summary"`
}
