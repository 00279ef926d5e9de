package model

// MimeTypeFolder : mime-тип папки в Google Drive
const MimeTypeFolder = "application/vnd.google-apps.folder"

// DriveFile : файл в Drive; получается заново при каждом листинге, не кэшируется
type DriveFile struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	MimeType      string   `json:"mimeType"`
	CreatedTime   string   `json:"createdTime"`
	Size          int64    `json:"size,omitempty"`
	Parents       []string `json:"parents,omitempty"`
	ThumbnailLink string   `json:"thumbnailLink,omitempty"`
	WebViewLink   string   `json:"webViewLink"`
}

// DriveFolder : описание папки ученика
type DriveFolder struct {
	ID          string `json:"folderId"`
	Name        string `json:"folderName"`
	MimeType    string `json:"-"`
	WebViewLink string `json:"webViewLink"`
}

// DriveFileList : одна страница листинга; NextPageToken отдаётся клиенту как есть
type DriveFileList struct {
	Files         []DriveFile
	NextPageToken string
}

// FileListing : результат листинга для клиента.
// Warning не пустой, когда папка числится в БД, но не живая в Drive
type FileListing struct {
	Files         []DriveFile
	NextPageToken string
	HasMore       bool
	Warning       string
}

// UploadResult : результат загрузки файла.
// MediaID равен нулю, если журнальная запись не создалась (не ошибка)
type UploadResult struct {
	File    *DriveFile
	MediaID int64
}
