package service

import (
	"fmt"
	"math/rand/v2"
)

// Avatar pools for newly registered accounts. Cosmetic only.
var (
	avatarSeeds = []string{
		"Alice", "Bob", "Charlie", "Diana", "Eve",
		"Frank", "Grace", "Henry", "Ivy", "Jack",
	}
	avatarBackgrounds = []string{
		"b6e3f4", "fecaca", "d8b4fe", "fed7aa", "bfdbfe",
		"fde68a", "a7f3d0", "fb7185", "fdba74", "c4b5fd",
	}
)

// randomAvatar picks a dicebear avatar URI from the fixed pools.
func randomAvatar() string {
	seed := avatarSeeds[rand.IntN(len(avatarSeeds))]
	bg := avatarBackgrounds[rand.IntN(len(avatarBackgrounds))]
	return fmt.Sprintf("https://api.dicebear.com/7.x/avataaars/svg?seed=%s&backgroundColor=%s", seed, bg)
}
