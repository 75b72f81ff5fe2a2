package locators

/**
 * Lever (jobs.lever.co) application form locators.
 */

// Identity fields. Lever keeps the candidate name in a single input.
const LEVER_FULL_NAME = "input[name='name'], input#name"
const LEVER_EMAIL = "input[name='email'], input[type='email']"
const LEVER_PHONE = "input[name='phone'], input[type='tel']"

// Link fields
const LEVER_LINKEDIN = "input[name='urls[LinkedIn]'], input[name*='LinkedIn']"
const LEVER_GITHUB = "input[name='urls[GitHub]'], input[name*='GitHub']"
const LEVER_PORTFOLIO = "input[name='urls[Portfolio]'], input[name*='Portfolio'], input[name*='Other']"

// Location typeahead. Selecting from the dropdown writes the paired
// hidden field; setting only the visible input does not register.
const LEVER_LOCATION_INPUT = "input#location-input, input[name='location']"
const LEVER_LOCATION_HIDDEN = "input[name='selected-location']"
const LEVER_LOCATION_OPTIONS = "#location-container .dropdown-results div, ul.dropdown-results li"

// Résumé upload. Lever parses the file and autofills identity fields.
const LEVER_RESUME_INPUT = "input#resume-upload-input, input[name='resume']"
const LEVER_RESUME_SUCCESS = ".resume-upload-success, .filename"
