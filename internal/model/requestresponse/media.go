package requestresponse

// CreateMediaRequest : тело запроса на журнальную запись о загрузке
type CreateMediaRequest struct {
	KidUUID  string `json:"kidUuid" example:"11111111-1111-1111-1111-111111111111"`
	FileName string `json:"fileName" example:"a.png"`
}

// CreateMediaResponse : успешный ответ
type CreateMediaResponse struct {
	ID int64 `json:"id" example:"42"`
}
