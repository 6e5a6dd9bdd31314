package character

import (
	"github.com/JayByRP/shield/core"
)

type createRequest struct {
	core.NewCharacter
}

type updateRequest struct {
	Secret string `json:"secret"`
	core.CharacterPatch
}

type deleteRequest struct {
	Secret string `json:"secret"`
}
