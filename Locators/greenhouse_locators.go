package locators

/**
 * Greenhouse (boards.greenhouse.io) application form locators.
 * Centralizes every selector the Greenhouse filler touches.
 */

// Identity fields
const GH_FIRST_NAME = "input#first_name, input[name='job_application[first_name]'], input[autocomplete='given-name']"
const GH_LAST_NAME = "input#last_name, input[name='job_application[last_name]'], input[autocomplete='family-name']"
const GH_EMAIL = "input#email, input[name='job_application[email]'], input[type='email']"
const GH_PHONE = "input#phone, input[name='job_application[phone]'], input[autocomplete='tel']"

// Link fields
const GH_LINKEDIN = "input[name*='linkedin' i], input[id*='linkedin' i], input[aria-label*='LinkedIn' i]"
const GH_WEBSITE = "input[name*='website' i], input[id*='website' i], input[aria-label*='Website' i]"

// Location typeahead and its popup option list
const GH_LOCATION_INPUT = "input#candidate-location, input[id*='location' i], input[name*='location' i]"
const GH_OPTION_LIST = "ul[id*='location'] li, div[class*='select__option'], ul[role='listbox'] li, [role='option']"

// Generic dropdown popup rendered by the custom select widget
const GH_SELECT_CONTROL = "div[class*='select__control'], [role='combobox']"
const GH_SELECT_OPTIONS = "div[class*='select__option'], [role='option']"

// Demographic section heading, present only when the posting collects EEO data
const GH_DEMOGRAPHIC_SECTION = "#demographic_questions, div[class*='demographic']"
