package systems

import (
	"math"
	"strings"

	"github.com/automoto/archery/components"
	cfg "github.com/automoto/archery/config"
	"github.com/automoto/archery/shared/archery"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Cache controller types to avoid string allocation every frame
var controllerTypeCache = make(map[ebiten.GamepadID]components.InputMethod)

// UpdateInput polls raw input and updates the InputComponent.
// Must run BEFORE UpdateArchers in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, mouseUsed, gamepadUsed bool
	var activeGamepadID ebiten.GamepadID

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, btn := range binding.MouseButtons {
			if ebiten.IsMouseButtonPressed(btn) {
				input.Current[actionID] = true
				mouseUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
					activeGamepadID = gpID
				}
			}
		}
	}

	// Cursor movement switches aiming back to the mouse
	cx, cy := ebiten.CursorPosition()
	if float64(cx) != input.CursorX || float64(cy) != input.CursorY {
		mouseUsed = true
		input.StickActive = false
	}
	input.CursorX, input.CursorY = float64(cx), float64(cy)

	if x, y, gpID, ok := getAimStickState(gamepadIDs); ok {
		input.StickX, input.StickY = x, y
		input.StickActive = true
		gamepadUsed = true
		activeGamepadID = gpID
	}

	// Gamepad takes priority if several devices were used
	switch {
	case gamepadUsed:
		input.LastInputMethod = getControllerType(activeGamepadID)
	case mouseUsed:
		input.LastInputMethod = components.InputMouse
	case keyboardUsed:
		input.LastInputMethod = components.InputKeyboard
	}
}

// getControllerType returns cached controller type, detecting on first access
func getControllerType(gpID ebiten.GamepadID) components.InputMethod {
	if method, ok := controllerTypeCache[gpID]; ok {
		return method
	}

	name := strings.ToLower(ebiten.GamepadName(gpID))
	var method components.InputMethod
	if strings.Contains(name, "ps4") || strings.Contains(name, "ps5") ||
		strings.Contains(name, "playstation") || strings.Contains(name, "dualshock") ||
		strings.Contains(name, "dualsense") {
		method = components.InputPlayStation
	} else {
		// Default gamepad to Xbox-style
		method = components.InputXbox
	}

	controllerTypeCache[gpID] = method
	return method
}

// getAimStickState reads the right stick of the first gamepad pushed past the deadzone.
// The returned direction is normalized and uses the gamepad's y-down convention.
func getAimStickState(gamepads []ebiten.GamepadID) (x, y float64, gpID ebiten.GamepadID, ok bool) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, id := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical)
		if l := math.Hypot(h, v); l > deadzone {
			return h / l, v / l, id, true
		}
	}
	return 0, 0, 0, false
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// ShootTrigger converts the shoot action into the archer's trigger events.
func ShootTrigger(input *components.InputData) archery.Trigger {
	s := GetAction(input, cfg.ActionShoot)
	return archery.Trigger{
		Down: s.JustPressed,
		Held: s.Pressed,
		Up:   s.JustReleased,
	}
}
