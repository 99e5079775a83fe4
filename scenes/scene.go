package scenes

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
	// Quit ends the game after the current frame.
	Quit()
}
