package cli

import (
	"fmt"
	"strconv"

	"netmotive-switcher/internal/application/store"
	"netmotive-switcher/internal/domain/entities"
	"netmotive-switcher/internal/domain/errors"
	"netmotive-switcher/internal/domain/services"

	"github.com/charmbracelet/huh"
)

// runProfileForm collects the six profile fields interactively,
// pre-filled with the given values
func runProfileForm(initial entities.Profile) (entities.Profile, error) {
	profile := initial

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Profile name").
				Value(&profile.Name),
			huh.NewInput().
				Title("IP address").
				Value(&profile.IP),
			huh.NewInput().
				Title("Subnet mask").
				Value(&profile.Subnet),
			huh.NewInput().
				Title("Gateway").
				Value(&profile.Gateway),
			huh.NewInput().
				Title("DNS 1 (optional)").
				Value(&profile.DNS1),
			huh.NewInput().
				Title("DNS 2 (optional)").
				Value(&profile.DNS2),
		),
	)
	if err := form.Run(); err != nil {
		return entities.Profile{}, err
	}

	return profile, nil
}

// pickProfile resolves the target profile index: an explicit argument
// wins, otherwise an interactive selector feeds the selection controller.
func pickProfile(args []string, profileStore *store.ProfileStore, selection *services.SelectionController, title string) (int, error) {
	if len(args) > 0 {
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return 0, errors.NewValidationError("profile index must be a number: "+args[0], err)
		}
		selection.Select(index)
		return index, nil
	}

	profiles := profileStore.List()
	if len(profiles) == 0 {
		return 0, errors.NewNotFoundError("no profiles stored")
	}

	// Duplicate names are allowed, so options carry the index too.
	options := make([]huh.Option[int], 0, len(profiles))
	for i, p := range profiles {
		options = append(options, huh.NewOption(fmt.Sprintf("%d: %s (%s)", i, p.Name, p.IP), i))
	}

	var index int
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title(title).
				Options(options...).
				Value(&index),
		),
	).Run()
	if err != nil {
		return 0, err
	}

	selection.Select(index)
	return index, nil
}

// pickAdapter resolves the target adapter name, interactively when the
// flag was not given
func pickAdapter(flagValue string, adapters []string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if len(adapters) == 0 {
		return "", errors.NewNotFoundError("no network adapters found")
	}

	options := make([]huh.Option[string], 0, len(adapters))
	for _, name := range adapters {
		options = append(options, huh.NewOption(name, name))
	}

	adapter := adapters[0]
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Select adapter").
				Options(options...).
				Value(&adapter),
		),
	).Run()
	if err != nil {
		return "", err
	}

	return adapter, nil
}

// confirmDelete asks before removing a profile
func confirmDelete(name string) (bool, error) {
	var confirmed bool
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete profile %q?", name)).
				Value(&confirmed),
		),
	).Run()
	if err != nil {
		return false, err
	}
	return confirmed, nil
}
