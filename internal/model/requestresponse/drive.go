package requestresponse

import "kids-media-server/internal/model"

// ListFilesResponse : страница файлов из Drive
// NextPageToken == null, когда следующей страницы нет
type ListFilesResponse struct {
	Files         []model.DriveFile `json:"files"`
	NextPageToken *string           `json:"nextPageToken"`
	HasMore       bool              `json:"hasMore" example:"true"`
	Warning       string            `json:"warning,omitempty" example:"папка ученика не найдена или недоступна в Drive"`
}

// UploadedFile : мета-данные загруженного файла
type UploadedFile struct {
	ID          string `json:"id" example:"1a2b3c4d5e"`
	Name        string `json:"name" example:"a.png"`
	Size        int64  `json:"size" example:"2048"`
	MimeType    string `json:"mimeType" example:"image/png"`
	CreatedTime string `json:"createdTime" example:"2025-08-23T12:34:56Z"`
	WebViewLink string `json:"webViewLink" example:"https://drive.google.com/file/d/1a2b3c4d5e/view"`
}

// UploadFileResponse : ответ на загрузку файла
// MediaID может отсутствовать: журнальная запись не обязана создаться
type UploadFileResponse struct {
	Success bool         `json:"success" example:"true"`
	File    UploadedFile `json:"file"`
	MediaID int64        `json:"mediaId,omitempty" example:"42"`
}
