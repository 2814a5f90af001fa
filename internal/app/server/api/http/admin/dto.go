package admin

type storageCheckInput struct {
	Authorization string `header:"Authorization"`
}

type storageCheckOutput struct {
	Body StorageCheckResponse
}

type StorageCheckResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message,omitempty"`
	Error      string `json:"error,omitempty"`
	BucketName string `json:"bucketName,omitempty"`
}

type deleteTestUsersInput struct {
	Authorization string `header:"Authorization"`
}

type deleteTestUsersOutput struct {
	Body DeleteTestUsersResponse
}

type DeleteTestUsersResponse struct {
	Deleted int    `json:"deleted"`
	Failed  int    `json:"failed"`
	Message string `json:"message,omitempty"`
}
